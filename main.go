package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/somaiyarv7-jpg/Voiceleger/ai"
	"github.com/somaiyarv7-jpg/Voiceleger/config"
	"github.com/somaiyarv7-jpg/Voiceleger/handlers"
	"github.com/somaiyarv7-jpg/Voiceleger/logger"
	"github.com/somaiyarv7-jpg/Voiceleger/middleware"
	"github.com/somaiyarv7-jpg/Voiceleger/models"
	"github.com/somaiyarv7-jpg/Voiceleger/routes"
	"github.com/somaiyarv7-jpg/Voiceleger/store"
)

// The ledger starts from a fixed dataset on every boot; nothing is persisted.
var initialSalesData = []models.Transaction{
	{Item: "T-Shirt", Quantity: 10, TotalSale: 250, Date: "2023-10-01"},
	{Item: "Mug", Quantity: 20, TotalSale: 200, Date: "2023-10-02"},
	{Item: "T-Shirt", Quantity: 15, TotalSale: 375, Date: "2023-10-03"},
	{Item: "Cap", Quantity: 12, TotalSale: 180, Date: "2023-10-04"},
	{Item: "Mug", Quantity: 25, TotalSale: 250, Date: "2023-10-05"},
	{Item: "T-Shirt", Quantity: 8, TotalSale: 200, Date: "2023-10-06"},
}

var initialPriceList = []models.PriceListItem{
	{Item: "T-Shirt", Price: 25},
	{Item: "Mug", Price: 10},
	{Item: "Cap", Price: 15},
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	recommender, err := ai.NewGeminiRecommender(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create recommendation client")
	}
	defer recommender.Close()

	ledger := store.New(recommender, initialSalesData, initialPriceList)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	routes.SetupRoutes(app, handlers.New(ledger))

	log.Info().Str("addr", cfg.ListenAddr).Str("model", cfg.GeminiModel).Msg("VoiceLedger listening")
	log.Fatal().Err(app.Listen(cfg.ListenAddr)).Msg("Server stopped")
}
