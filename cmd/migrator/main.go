package main

import (
	"context"
	"log"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose"
)

const migrationsDir = "migrations"

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Database.URL)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to select migration dialect: %v", err)
	}

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if migrationErr := goose.Up(dtb, migrationsDir); migrationErr != nil {
		log.Fatalf("Failed to apply migrations: %v", migrationErr) //nolint:gocritic // pool is closed by process exit
	}

	log.Println("✅ Migrations applied successfully")
}
