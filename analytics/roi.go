package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/somaiyarv7-jpg/Voiceleger/models"
)

const (
	// profitMargin is the assumed margin on every sale.
	profitMargin = 0.4
	// priceIncreaseEffect is the assumed uplift from following the pricing
	// recommendations, compounded at every data point.
	priceIncreaseEffect = 1.05
	// maxRoiPoints caps how many points the chart shows.
	maxRoiPoints = 15
)

// ProjectRoi derives the cumulative and projected profit series from the
// sales list. Fewer than two transactions is not enough to draw a trend and
// yields an empty series. Accumulation runs over the whole history sorted by
// date; only the most recent points are returned.
func ProjectRoi(sales []models.Transaction) []models.RoiDataPoint {
	if len(sales) < 2 {
		return []models.RoiDataPoint{}
	}

	sorted := make([]models.Transaction, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date).Before(parseDate(sorted[j].Date))
	})

	points := make([]models.RoiDataPoint, 0, len(sorted))
	var cumulativeProfit, projectedProfit float64
	for _, sale := range sorted {
		saleProfit := sale.TotalSale * profitMargin
		cumulativeProfit += saleProfit
		projectedProfit = (projectedProfit + saleProfit) * priceIncreaseEffect

		points = append(points, models.RoiDataPoint{
			Date:            sale.Date,
			CurrentProfit:   int(math.Round(cumulativeProfit)),
			ProjectedProfit: int(math.Round(projectedProfit)),
		})
	}

	if len(points) > maxRoiPoints {
		points = points[len(points)-maxRoiPoints:]
	}
	return points
}

// parseDate treats unparseable dates as the zero time so they sort first.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
