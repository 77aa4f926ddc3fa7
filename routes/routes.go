package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/somaiyarv7-jpg/Voiceleger/handlers"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	api := app.Group("/api/v1")

	// Recommendation cycle
	api.Post("/recommendations", h.HandleSubmitTranscript)

	// Dashboard data
	api.Get("/sales", h.HandleListSales)
	api.Get("/sales/summary", h.HandleGetSalesSummary)
	api.Get("/sales/roi", h.HandleGetRoiProjection)
	api.Get("/prices", h.HandleListPrices)
	api.Get("/history", h.HandleListHistory)
	api.Get("/status", h.HandleGetStatus)
}
