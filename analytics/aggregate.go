package analytics

import (
	"github.com/somaiyarv7-jpg/Voiceleger/models"
)

// AggregateSales rolls the transaction list up into one summary per distinct
// item name, in the order items first appear. Matching is by exact item name;
// the price-list merge in the store matches case-insensitively instead, and
// both behaviors are intentional.
func AggregateSales(sales []models.Transaction) []models.ItemSalesSummary {
	summaries := []models.ItemSalesSummary{}
	index := make(map[string]int)

	for _, sale := range sales {
		if i, ok := index[sale.Item]; ok {
			summaries[i].TotalSales += sale.TotalSale
			summaries[i].QuantitySold += sale.Quantity
			continue
		}
		index[sale.Item] = len(summaries)
		summaries = append(summaries, models.ItemSalesSummary{
			Item:         sale.Item,
			TotalSales:   sale.TotalSale,
			QuantitySold: sale.Quantity,
		})
	}

	return summaries
}
