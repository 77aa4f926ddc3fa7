// Package transcript holds the dictation accumulator used while a
// transaction is being spoken. Speech recognizers emit a mix of finalized
// segments and a constantly rewritten interim tail; the accumulator keeps the
// two apart so the dashboard can show live text and submit the finalized
// transcript. It is presentation-side plumbing and is not part of the
// recommendation pipeline.
package transcript

import (
	"strings"
	"sync"
)

// Accumulator collects finalized speech segments and tracks the current
// interim (not yet finalized) segment.
type Accumulator struct {
	mu      sync.Mutex
	final   string
	interim string
}

// AppendFinal adds a finalized segment to the transcript and drops the
// interim tail it replaces.
func (a *Accumulator) AppendFinal(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.final += text
	a.interim = ""
}

// SetInterim replaces the interim tail with the recognizer's latest guess.
func (a *Accumulator) SetInterim(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.interim = text
}

// Snapshot returns the transcript as it currently reads: all finalized text
// followed by the interim tail.
func (a *Accumulator) Snapshot() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.final + a.interim
}

// Final returns only the finalized transcript, trimmed, ready to submit.
func (a *Accumulator) Final() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return strings.TrimSpace(a.final)
}

// Reset clears the accumulator for the next dictation.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.final = ""
	a.interim = ""
}
