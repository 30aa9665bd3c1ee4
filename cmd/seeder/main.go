package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/adithyavangapandu/moviesstore/internal/config"

	"github.com/jackc/pgx/v5"
)

type MovieRecord struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
}

func main() {
	file := flag.String("file", "", "Path to the movie catalog CSV file")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure schema exists
	err = createTablesIfNotExist(conn)
	if err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertRecords(conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(records))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d movies\n", len(records))
}

func parseCSV(filePath string) ([]MovieRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []MovieRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 4 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 4 columns", len(record))
		}

		price, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price: %s", record[1])
		}

		movie := MovieRecord{
			Name:        record[0],
			Price:       price,
			Description: record[2],
			ImageURL:    record[3],
		}

		records = append(records, movie)
	}

	return records, nil
}

func createTablesIfNotExist(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE
	);
	CREATE TABLE IF NOT EXISTS profiles (
		user_id BIGINT PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
		city VARCHAR(100) NOT NULL,
		state CHAR(2) NOT NULL,
		region VARCHAR(32) NOT NULL DEFAULT '',
		latitude NUMERIC(9, 6) NOT NULL,
		longitude NUMERIC(9, 6) NOT NULL
	);
	CREATE TABLE IF NOT EXISTS movies (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price NUMERIC(10, 2) NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		image_url VARCHAR(255) NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		date TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		movie_id BIGINT NOT NULL REFERENCES movies (id),
		quantity BIGINT NOT NULL,
		price NUMERIC(10, 2) NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		movie_id BIGINT NOT NULL REFERENCES movies (id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		comment TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT now(),
		is_hidden BOOLEAN NOT NULL DEFAULT FALSE,
		report_reason TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS profiles_region_idx ON profiles (region);
	CREATE INDEX IF NOT EXISTS profiles_state_idx ON profiles (state);
	CREATE INDEX IF NOT EXISTS profiles_city_idx ON profiles (city);
	CREATE INDEX IF NOT EXISTS items_order_id_idx ON items (order_id);
	CREATE INDEX IF NOT EXISTS orders_user_id_idx ON orders (user_id);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRecords(conn *pgx.Conn, records []MovieRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"movies"},
		[]string{"name", "price", "description", "image_url"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.Name, r.Price, r.Description, r.ImageURL}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM movies").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	// Check a sample row
	var name string
	err = conn.QueryRow(context.Background(), "SELECT name FROM movies LIMIT 1").Scan(&name)
	if err != nil {
		return fmt.Errorf("failed to check sample movie: %w", err)
	}

	fmt.Printf("Sample movie: %s\n", name)
	return nil
}
