package models

// RecommendationRequest defines the structure for pricing advice requests.
type RecommendationRequest struct {
	Transcript string `json:"transcript"`
}

// ParsedTransaction is the transaction the model parsed out of the transcript.
type ParsedTransaction struct {
	Item         string  `json:"item"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"pricePerItem"`
	TotalSale    float64 `json:"totalSale"`
}

// Recommendation is the model's pricing advice for the parsed item.
type Recommendation struct {
	RecommendedPrice     float64 `json:"recommendedPrice"`
	Reasoning            string  `json:"reasoning"`
	SpokenRecommendation string  `json:"spokenRecommendation"`
}

// AiResponse is the full structured answer for one recommendation cycle.
type AiResponse struct {
	Transaction    ParsedTransaction `json:"transaction"`
	Recommendation Recommendation    `json:"recommendation"`
}
