package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/glowcare/clinic-booking/internal/config"
	"github.com/glowcare/clinic-booking/internal/demo"
	bookingRepo "github.com/glowcare/clinic-booking/internal/infra/storage/booking"
	customerRepo "github.com/glowcare/clinic-booking/internal/infra/storage/customer"
	treatmentRepo "github.com/glowcare/clinic-booking/internal/infra/storage/treatment"
	"github.com/glowcare/clinic-booking/pkg/dbmetrics"
	"github.com/glowcare/clinic-booking/pkg/logger"
)

// Наполняет базу детерминированными демо-данными:
// каталог процедур, клиенты и насыщенные записями дни нескольких мастеров
func main() {
	var (
		configPath = flag.String("config", "config.toml", "path to config file")
		seed       = flag.Int64("seed", 42, "random seed for reproducible demo data")
		customers  = flag.Int("customers", 25, "number of demo customers")
		staffCount = flag.Int("staff", 3, "number of staff members to schedule")
		days       = flag.Int("days", 7, "number of days to fill with bookings, starting today")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	wrappedDB := dbmetrics.Wrap(db)
	treatments := treatmentRepo.NewRepository(wrappedDB)
	customersRepo := customerRepo.NewRepository(wrappedDB)
	bookings := bookingRepo.NewRepository(wrappedDB)

	gen := demo.NewGenerator(*seed)
	ctx := context.Background()

	log.Info("Seeding demo data: seed=%d, customers=%d, staff=%d, days=%d",
		*seed, *customers, *staffCount, *days)

	// Каталог процедур
	catalog := gen.Treatments()
	for _, treatment := range catalog {
		created, err := treatments.Create(ctx, treatment)
		if err != nil {
			log.Fatal("Failed to create treatment %q: %v", treatment.Name, err)
		}
		treatment.ID = created.ID
	}
	log.Info("Created %d treatments", len(catalog))

	// Клиенты
	customerIDs := make([]int64, 0, *customers)
	for _, customer := range gen.Customers(*customers) {
		created, err := customersRepo.Create(ctx, customer)
		if err != nil {
			log.Fatal("Failed to create customer %s: %v", customer.Email, err)
		}
		customerIDs = append(customerIDs, created.ID)
	}
	log.Info("Created %d customers", len(customerIDs))

	// Записи на ближайшие дни
	today := time.Now().Truncate(24 * time.Hour)
	total := 0
	for staffID := int64(1); staffID <= int64(*staffCount); staffID++ {
		for d := 0; d < *days; d++ {
			day := today.AddDate(0, 0, d)
			for _, booking := range gen.BookingsForDay(day, staffID, customerIDs, catalog) {
				if _, err := bookings.Create(ctx, booking); err != nil {
					log.Fatal("Failed to create booking: %v", err)
				}
				total++
			}
		}
	}
	log.Info("Created %d bookings for %d staff over %d days", total, *staffCount, *days)

	log.Info("Demo data seeded successfully")
}
