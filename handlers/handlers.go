package handlers

import (
	"github.com/somaiyarv7-jpg/Voiceleger/store"
)

// Handlers carries the state controller the HTTP surface operates on.
type Handlers struct {
	Ledger *store.Store
}

// New wires the handlers to a store.
func New(ledger *store.Store) *Handlers {
	return &Handlers{Ledger: ledger}
}
