package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"visit-route-service/internal/adapters/repositories"
	"visit-route-service/internal/config"
	"visit-route-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/demo.json")
	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(database *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
