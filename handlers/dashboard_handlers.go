package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/somaiyarv7-jpg/Voiceleger/analytics"
)

// HandleListSales returns the raw transaction list in insertion order.
// GET /api/v1/sales
func (h *Handlers) HandleListSales(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": h.Ledger.Sales()})
}

// HandleGetSalesSummary returns per-item totals for the sales chart.
// GET /api/v1/sales/summary
func (h *Handlers) HandleGetSalesSummary(c *fiber.Ctx) error {
	summary := analytics.AggregateSales(h.Ledger.Sales())
	return c.JSON(fiber.Map{"status": "success", "data": summary})
}

// HandleGetRoiProjection returns the cumulative/projected profit series.
// GET /api/v1/sales/roi
func (h *Handlers) HandleGetRoiProjection(c *fiber.Ctx) error {
	points := analytics.ProjectRoi(h.Ledger.Sales())
	if len(points) == 0 {
		return c.JSON(fiber.Map{
			"status":  "success",
			"data":    points,
			"message": "Not enough data to project ROI. Log more transactions.",
		})
	}
	return c.JSON(fiber.Map{"status": "success", "data": points})
}

// HandleListPrices returns the current price list.
// GET /api/v1/prices
func (h *Handlers) HandleListPrices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": h.Ledger.Prices()})
}

// HandleListHistory returns the interaction log, newest first.
// GET /api/v1/history
func (h *Handlers) HandleListHistory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": h.Ledger.History()})
}

// HandleGetStatus reports the busy flag and the last user-visible error. The
// dashboard polls this to disable the submit button while a cycle runs.
// GET /api/v1/status
func (h *Handlers) HandleGetStatus(c *fiber.Ctx) error {
	return c.JSON(h.Ledger.Status())
}
