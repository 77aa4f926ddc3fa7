package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/somaiyarv7-jpg/Voiceleger/models"
)

// responseSchema constrains Gemini to the AiResponse shape. All fields of
// both sub-objects are required; anything else fails the JSON decode.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"transaction": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"item":         {Type: genai.TypeString, Description: `The single product sold. e.g., "T-shirt"`},
				"quantity":     {Type: genai.TypeInteger, Description: "The number of items sold."},
				"pricePerItem": {Type: genai.TypeNumber, Description: "The price for a single item."},
				"totalSale":    {Type: genai.TypeNumber, Description: "The total value of the transaction."},
			},
			Required: []string{"item", "quantity", "pricePerItem", "totalSale"},
		},
		"recommendation": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"recommendedPrice":     {Type: genai.TypeNumber, Description: "The new recommended price for the item."},
				"reasoning":            {Type: genai.TypeString, Description: "A brief explanation for the price recommendation based on provided history."},
				"spokenRecommendation": {Type: genai.TypeString, Description: "The full sentence to be spoken back to the user in a professional, clear voice."},
			},
			Required: []string{"recommendedPrice", "reasoning", "spokenRecommendation"},
		},
	},
	Required: []string{"transaction", "recommendation"},
}

// GeminiRecommender implements Recommender against the Gemini API using
// structured (schema-constrained) generation.
type GeminiRecommender struct {
	client *genai.Client
	model  string
}

// NewGeminiRecommender creates the Gemini client once; it is reused for
// every recommendation cycle.
func NewGeminiRecommender(ctx context.Context, apiKey, model string) (*GeminiRecommender, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiRecommender{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (g *GeminiRecommender) Close() error {
	return g.client.Close()
}

// GetPricingRecommendation makes a single call, no retries. No timeout is
// enforced here beyond whatever deadline ctx carries; a hung upstream call
// holds the caller's busy state until the request context ends.
func (g *GeminiRecommender) GetPricingRecommendation(ctx context.Context, transcript string, salesHistory []models.Transaction) (*models.AiResponse, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(transcript, salesHistory)))
	if err != nil {
		log.Error().Err(err).Msg("Gemini generate call failed")
		return nil, ErrRecommendationFailed
	}

	result, err := decodeResponse(resp)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decode Gemini response")
		return nil, ErrRecommendationFailed
	}
	return result, nil
}

// decodeResponse parses the model's JSON text into an AiResponse. This is the
// only validation step: schema violations surface as decode failures.
func decodeResponse(resp *genai.GenerateContentResponse) (*models.AiResponse, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("model returned no candidates")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response part type %T", resp.Candidates[0].Content.Parts[0])
	}

	var result models.AiResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(text))), &result); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return &result, nil
}
