package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"orderdash/internal/config"
	"orderdash/internal/db"
	"orderdash/internal/model"
	"orderdash/internal/repository"
)

// demoOrders are inserted into an empty store so the dashboard has something
// to show during development.
var demoOrders = []struct {
	ProductName string
	Amount      string
}{
	{"Mechanical Keyboard", "89.99"},
	{"USB-C Dock", "129.00"},
	{"27\" Monitor", "249.50"},
	{"Webcam", "59.99"},
	{"Desk Mat", "19.99"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Order{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	orderRepo := repository.NewOrderRepository(gormDB)

	count, err := orderRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count orders: %v", err)
	}
	if count > 0 {
		log.Printf("Store already has %d order(s), nothing to seed", count)
		return
	}

	seeded := 0
	for _, item := range demoOrders {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			log.Printf("Skipping order with invalid amount: %s", item.Amount)
			continue
		}
		order := &model.Order{
			ProductName: item.ProductName,
			Amount:      amount,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			log.Fatalf("Failed to create order %q: %v", item.ProductName, err)
		}
		seeded++
	}

	log.Printf("Seeded %d demo order(s)", seeded)
}
