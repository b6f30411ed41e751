package main

import (
	"fmt"
	"log"

	"press_manager/internal/config"
	"press_manager/internal/database"
	"press_manager/internal/models"
	"press_manager/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Order{},
		&models.LineItem{},
		&models.Service{},
		&models.Cost{},
		&models.Admin{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Order{},
		&models.LineItem{},
		&models.Service{},
		&models.Cost{},
		&models.Admin{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := seedCatalog(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	fmt.Println("Database initialized successfully")
}

func seedCatalog(db *gorm.DB) error {
	serviceRepo := repository.NewServiceRepository(db)

	defaults := []models.Service{
		{ID: uuid.NewString(), Name: "Wash", Price: "10.00", PricingMode: models.PricingPerUnit},
		{ID: uuid.NewString(), Name: "Iron", Price: "5.00", PricingMode: models.PricingPerUnit},
		{ID: uuid.NewString(), Name: "Banner print", Price: "25.50", PricingMode: models.PricingPerArea},
	}

	for _, service := range defaults {
		svc := service
		if err := serviceRepo.Create(&svc); err != nil {
			return err
		}
		fmt.Printf("Seeded service %q\n", svc.Name)
	}

	return nil
}
