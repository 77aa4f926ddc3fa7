package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/somaiyarv7-jpg/Voiceleger/ai"
	"github.com/somaiyarv7-jpg/Voiceleger/models"
	"github.com/somaiyarv7-jpg/Voiceleger/utils"
)

// User-visible messages. Clients only ever see these; causes stay in the log.
const (
	MissingInputMessage         = "Please provide a transaction description."
	RecommendationFailedMessage = "Sorry, I couldn't get a pricing recommendation. Please try again."
)

var (
	// ErrMissingInput is returned for a blank transcript. No call is made.
	ErrMissingInput = errors.New("transaction description is empty")
	// ErrBusy is returned while a recommendation cycle is already in flight.
	ErrBusy = errors.New("a recommendation is already in progress")
)

// Status is the read-only view of the controller state the dashboard polls.
type Status struct {
	Busy  bool   `json:"busy"`
	Error string `json:"error,omitempty"`
}

// Store owns the sales list, price list, and interaction history, and runs
// recommendation cycles against the injected Recommender. It is the single
// writer of all three lists; readers get copied snapshots. The merge after a
// successful cycle happens in one critical section, so no reader can observe
// a partially applied result.
type Store struct {
	mu          sync.Mutex
	recommender ai.Recommender
	now         func() time.Time

	sales   []models.Transaction
	prices  []models.PriceListItem
	history []models.HistoryItem

	busy    bool
	lastErr string
}

// New seeds a store with the initial sales and price data.
func New(recommender ai.Recommender, seedSales []models.Transaction, seedPrices []models.PriceListItem) *Store {
	s := &Store{
		recommender: recommender,
		now:         time.Now,
		sales:       make([]models.Transaction, len(seedSales)),
		prices:      make([]models.PriceListItem, len(seedPrices)),
		history:     []models.HistoryItem{},
	}
	copy(s.sales, seedSales)
	copy(s.prices, seedPrices)
	return s
}

// SubmitTranscript runs one full recommendation cycle: validate the
// transcript, call the model with the sales history snapshot taken at call
// time, then merge the result. A failed cycle leaves every list untouched and
// only sets the user-visible error; the busy flag is cleared on every path.
func (s *Store) SubmitTranscript(ctx context.Context, transcript string) (*models.AiResponse, error) {
	if strings.TrimSpace(transcript) == "" {
		s.mu.Lock()
		s.lastErr = MissingInputMessage
		s.mu.Unlock()
		return nil, ErrMissingInput
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.lastErr = ""
	snapshot := make([]models.Transaction, len(s.sales))
	copy(snapshot, s.sales)
	s.mu.Unlock()

	// The only suspension point. The sales history is not re-read afterwards;
	// the snapshot from call time is what the model saw.
	result, err := s.recommender.GetPricingRecommendation(ctx, transcript, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		s.lastErr = RecommendationFailedMessage
		return nil, err
	}

	s.merge(transcript, result)
	return result, nil
}

// merge applies one accepted recommendation. Caller must hold s.mu.
func (s *Store) merge(transcript string, result *models.AiResponse) {
	now := s.now()

	s.history = append([]models.HistoryItem{{
		ID:         now.UnixMilli(),
		UserQuery:  transcript,
		AiResponse: *result,
	}}, s.history...)

	// The model parses the numbers; the display name is capitalized and the
	// date is stamped with today, never a date the model might have guessed.
	item := utils.CapitalizeFirst(result.Transaction.Item)
	s.sales = append(s.sales, models.Transaction{
		Item:         item,
		Quantity:     result.Transaction.Quantity,
		PricePerItem: result.Transaction.PricePerItem,
		TotalSale:    result.Transaction.TotalSale,
		Date:         now.Format("2006-01-02"),
	})

	for i := range s.prices {
		if strings.EqualFold(s.prices[i].Item, item) {
			s.prices[i].Price = result.Recommendation.RecommendedPrice
			return
		}
	}
	s.prices = append(s.prices, models.PriceListItem{
		Item:  item,
		Price: result.Recommendation.RecommendedPrice,
	})
}

// Sales returns a copy of the transaction list in insertion order.
func (s *Store) Sales() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.sales))
	copy(out, s.sales)
	return out
}

// Prices returns a copy of the price list.
func (s *Store) Prices() []models.PriceListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PriceListItem, len(s.prices))
	copy(out, s.prices)
	return out
}

// History returns a copy of the interaction log, newest first.
func (s *Store) History() []models.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HistoryItem, len(s.history))
	copy(out, s.history)
	return out
}

// Status reports whether a cycle is in flight and the last user-visible
// error, if any.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Busy: s.busy, Error: s.lastErr}
}
