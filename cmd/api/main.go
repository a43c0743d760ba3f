package main

import (
	"fmt"
	"log"
	"os"

	"tariff-impact/internal/api/handlers"
	"tariff-impact/internal/api/middleware"
	"tariff-impact/internal/config"
	"tariff-impact/internal/data"
	"tariff-impact/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}

	// The tables are loaded once and read-only for the server lifetime.
	tariffs, err := data.LoadTariffScenarios(cfg.Data.TariffFile)
	if err != nil {
		log.Fatalf("Failed to load tariff scenarios: %v", err)
	}
	markets, err := data.LoadAlternativeMarkets(cfg.Data.MarketsFile)
	if err != nil {
		log.Fatalf("Failed to load alternative markets: %v", err)
	}
	log.Printf("Loaded %d sectors and %d alternative markets", tariffs.Len(), markets.Len())

	store := session.NewStore()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	analyzeHandler := handlers.NewAnalyzeHandler(tariffs, markets, cfg.Defaults, store)
	catalogHandler := handlers.NewCatalogHandler(tariffs, markets)
	scenariosHandler := handlers.NewScenariosHandler(store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.RunAnalysis)

		api.GET("/sectors", catalogHandler.ListSectors)
		api.GET("/markets", catalogHandler.ListMarkets)
		api.GET("/exposure", catalogHandler.SectorExposure)

		api.GET("/scenarios", scenariosHandler.ListScenarios)
		api.GET("/scenarios/export", scenariosHandler.ExportScenarios)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
