package ai

import (
	"context"
	"errors"

	"github.com/somaiyarv7-jpg/Voiceleger/models"
)

// ErrRecommendationFailed is the only error the recommendation client
// surfaces. The underlying cause (network, bad status, malformed JSON) is
// logged, never returned; callers cannot and should not distinguish them.
var ErrRecommendationFailed = errors.New("failed to get pricing recommendation from AI")

// Recommender turns a spoken-transaction transcript plus the sales history
// into a structured pricing recommendation.
type Recommender interface {
	GetPricingRecommendation(ctx context.Context, transcript string, salesHistory []models.Transaction) (*models.AiResponse, error)
}
