package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somaiyarv7-jpg/Voiceleger/models"
)

func TestAggregateSalesEmptyInput(t *testing.T) {
	out := AggregateSales(nil)
	assert.Empty(t, out)

	out = AggregateSales([]models.Transaction{})
	assert.Empty(t, out)
}

func TestAggregateSalesSumsPerItem(t *testing.T) {
	sales := []models.Transaction{
		{Item: "T-Shirt", Quantity: 10, TotalSale: 250, Date: "2023-10-01"},
		{Item: "Mug", Quantity: 20, TotalSale: 200, Date: "2023-10-02"},
		{Item: "T-Shirt", Quantity: 15, TotalSale: 375, Date: "2023-10-03"},
		{Item: "Cap", Quantity: 12, TotalSale: 180, Date: "2023-10-04"},
		{Item: "Mug", Quantity: 25, TotalSale: 250, Date: "2023-10-05"},
	}

	out := AggregateSales(sales)

	assert.Equal(t, []models.ItemSalesSummary{
		{Item: "T-Shirt", TotalSales: 625, QuantitySold: 25},
		{Item: "Mug", TotalSales: 450, QuantitySold: 45},
		{Item: "Cap", TotalSales: 180, QuantitySold: 12},
	}, out)
}

func TestAggregateSalesConservesTotals(t *testing.T) {
	sales := []models.Transaction{
		{Item: "A", Quantity: 1, TotalSale: 10.5},
		{Item: "B", Quantity: 2, TotalSale: 20},
		{Item: "A", Quantity: 3, TotalSale: 30},
		{Item: "C", Quantity: 4, TotalSale: 40.25},
		{Item: "B", Quantity: 5, TotalSale: 50},
	}

	var wantSales float64
	var wantQty int
	for _, s := range sales {
		wantSales += s.TotalSale
		wantQty += s.Quantity
	}

	var gotSales float64
	var gotQty int
	for _, s := range AggregateSales(sales) {
		gotSales += s.TotalSales
		gotQty += s.QuantitySold
	}

	assert.InDelta(t, wantSales, gotSales, 1e-9)
	assert.Equal(t, wantQty, gotQty)
}

// Aggregation matches item names exactly. Differently cased names stay
// separate rows even though the price list would merge them; this pins the
// observed behavior.
func TestAggregateSalesIsCaseSensitive(t *testing.T) {
	sales := []models.Transaction{
		{Item: "T-Shirt", Quantity: 10, TotalSale: 250},
		{Item: "t-shirt", Quantity: 5, TotalSale: 100},
	}

	out := AggregateSales(sales)

	assert.Len(t, out, 2)
	assert.Equal(t, "T-Shirt", out[0].Item)
	assert.Equal(t, "t-shirt", out[1].Item)
}
