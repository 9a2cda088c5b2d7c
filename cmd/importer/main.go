package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mapnotes-api/internal/config"
	"mapnotes-api/internal/models"
	"mapnotes-api/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "Path to the legacy data.json file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseLegacyFile(*file)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Open the configured store
	var dst store.Store
	switch cfg.StoreBackend {
	case "postgres":
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			fmt.Printf("Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()

		pg := store.NewPostgresStore(conn)
		if err := pg.EnsureSchema(ctx); err != nil {
			fmt.Printf("Error creating schema: %v\n", err)
			os.Exit(1)
		}
		dst = pg
	default:
		dst = store.NewJSONFileStore(cfg.StoreFile)
	}

	// Insert records, keeping legacy ids where present
	inserted := 0
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if err := dst.Insert(ctx, rec); err != nil {
			fmt.Printf("Error inserting record %s: %v\n", rec.ID, err)
			os.Exit(1)
		}
		inserted++
	}

	// Verify data
	if err := verifyImport(ctx, dst, inserted); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", inserted)
}

// parseLegacyFile reads a legacy data file. Records decode through the
// normalizing unmarshaler, so alias keys and scalar video fields come out
// canonical.
func parseLegacyFile(filePath string) ([]models.LocationRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	var records []models.LocationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	return records, nil
}

func verifyImport(ctx context.Context, dst store.Store, expectedCount int) error {
	stored, err := dst.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if len(stored) < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, len(stored))
	}
	return nil
}
