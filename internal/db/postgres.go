package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// ESTABLISHMENTS (searchable catalog)
	// -------------------------------
	establishmentsSQL := `
		CREATE TABLE IF NOT EXISTS establishments (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			city VARCHAR(100) NOT NULL,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			categories TEXT[] NOT NULL DEFAULT '{}',
			cuisines TEXT[] NOT NULL DEFAULT '{}',
			price_tier VARCHAR(8) NOT NULL DEFAULT '$',
			average_rating DOUBLE PRECISION,
			review_count INTEGER NOT NULL DEFAULT 0,
			boost_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_24_hours BOOLEAN NOT NULL DEFAULT FALSE,
			working_hours JSONB,
			features TEXT[] NOT NULL DEFAULT '{}',
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, establishmentsSQL); err != nil {
		return err
	}

	// Search always narrows on status, and usually on city too.
	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_establishments_city_status
		ON establishments (city, status)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
