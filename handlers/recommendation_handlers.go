package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/somaiyarv7-jpg/Voiceleger/models"
	"github.com/somaiyarv7-jpg/Voiceleger/store"
)

// HandleSubmitTranscript runs one recommendation cycle.
// POST /api/v1/recommendations
func (h *Handlers) HandleSubmitTranscript(c *fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	result, err := h.Ledger.SubmitTranscript(c.Context(), req.Transcript)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMissingInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": store.MissingInputMessage})
		case errors.Is(err, store.ErrBusy):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "A recommendation is already in progress"})
		default:
			// Network, upstream, and parse failures are indistinguishable
			// here; the cause was already logged by the client.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": store.RecommendationFailedMessage})
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}
