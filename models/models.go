package models

// --- Core Models ---

// Transaction represents one completed sale. Transactions are immutable once
// created and are only ever appended to the sales list.
type Transaction struct {
	Item         string  `json:"item"`
	Quantity     int     `json:"quantity"`
	TotalSale    float64 `json:"totalSale"`
	PricePerItem float64 `json:"pricePerItem,omitempty"`
	Date         string  `json:"date"` // YYYY-MM-DD
}

// PriceListItem is the current listed price for one distinct item. Items are
// unique by name (case-insensitive) in the price list.
type PriceListItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

// HistoryItem is one accepted recommendation in the interaction log.
type HistoryItem struct {
	ID         int64      `json:"id"`
	UserQuery  string     `json:"userQuery"`
	AiResponse AiResponse `json:"aiResponse"`
}

// --- Derived Models ---

// ItemSalesSummary is the per-item rollup shown in the sales chart.
type ItemSalesSummary struct {
	Item         string  `json:"item"`
	TotalSales   float64 `json:"totalSales"`
	QuantitySold int     `json:"quantitySold"`
}

// RoiDataPoint is one point of the cumulative/projected profit series.
// Profit values are rounded to the nearest whole dollar.
type RoiDataPoint struct {
	Date            string `json:"date"`
	CurrentProfit   int    `json:"currentProfit"`
	ProjectedProfit int    `json:"projectedProfit"`
}
