package main

import (
	"context"
	"log"

	"press_manager/internal/assets"
	"press_manager/internal/config"
	"press_manager/internal/database"
	"press_manager/internal/handlers"
	"press_manager/internal/live"
	"press_manager/internal/models"
	"press_manager/internal/repository"
	"press_manager/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize the live snapshot hub
	hub, err := live.NewHub(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer hub.Close()

	// Initialize the asset store
	assetStore, err := assets.NewDiskStore(cfg.AssetDir, cfg.AssetBaseURL)
	if err != nil {
		log.Fatal("Failed to initialize asset store:", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	costRepo := repository.NewCostRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	orderService := services.NewOrderService(orderRepo, serviceRepo, hub)
	catalogService := services.NewCatalogService(serviceRepo, assetStore, hub)
	costService := services.NewCostService(costRepo, adminRepo, hub)
	archiveService := services.NewArchiveService(orderRepo, serviceRepo)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	costHandler := handlers.NewCostHandler(costService)
	archiveHandler := handlers.NewArchiveHandler(archiveService)
	uploadHandler := handlers.NewUploadHandler(assetStore)
	liveHandler := handlers.NewLiveHandler(hub, map[string]handlers.CollectionFetcher{
		models.CollectionOrders: func(ctx context.Context) (interface{}, error) {
			return orderRepo.GetByCollection(models.CollectionOrders)
		},
		models.CollectionDelivered: func(ctx context.Context) (interface{}, error) {
			return orderRepo.GetByCollection(models.CollectionDelivered)
		},
		models.CollectionDeleted: func(ctx context.Context) (interface{}, error) {
			return orderRepo.GetByCollection(models.CollectionDeleted)
		},
		"services": func(ctx context.Context) (interface{}, error) {
			return serviceRepo.GetAll()
		},
		"costs": func(ctx context.Context) (interface{}, error) {
			return costRepo.GetAll()
		},
		"admins": func(ctx context.Context) (interface{}, error) {
			return adminRepo.GetAll()
		},
	})

	// Setup routes
	router := gin.Default()

	router.Static("/assets", cfg.AssetDir)

	api := router.Group("/api")
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.POST("/orders/:id/advance", orderHandler.AdvanceOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)

		api.GET("/archive/delivered", archiveHandler.ListDelivered)
		api.GET("/archive/deleted", archiveHandler.ListDeleted)
		api.DELETE("/archive/:collection/:id", archiveHandler.PurgeOrder)

		api.GET("/services", catalogHandler.ListServices)
		api.POST("/services", catalogHandler.CreateService)
		api.PUT("/services/:id", catalogHandler.UpdateService)
		api.DELETE("/services/:id", catalogHandler.DeleteService)

		api.GET("/costs", costHandler.ListCosts)
		api.POST("/costs", costHandler.CreateCost)

		api.POST("/uploads", uploadHandler.UploadImage)

		api.GET("/live/:collection", liveHandler.Stream)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
