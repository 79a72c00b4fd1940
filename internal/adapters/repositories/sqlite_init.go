package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"loadplan-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCargoItemsQuery := `
	CREATE TABLE IF NOT EXISTS cargo_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT NOT NULL,
		cargo_type TEXT NOT NULL,
		subtype TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		weight_kg REAL NOT NULL
	);
	`

	createLoadPlansQuery := `
	CREATE TABLE IF NOT EXISTS load_plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		plan_json TEXT NOT NULL
	);
	`

	statements := []string{
		createCargoItemsQuery,
		createLoadPlansQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CargoSeed struct {
	ItemID   string  `json:"item_id"`
	Type     string  `json:"type"`
	Subtype  string  `json:"subtype"`
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weight_kg"`
}

// Populate the database with cargo item data from a JSON file.
// Seed rows without an item_id get a generated one.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed cargo: read %q: %w", jsonPath, err)
	}

	var data []CargoSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed cargo: parse json: %w", err)
	}

	rows := make([]CargoSeed, 0, len(data))
	for i, item := range data {
		if !domain.CargoType(item.Type).Valid() {
			return fmt.Errorf("seed cargo: invalid type at index %d: %q", i+1, item.Type)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("seed cargo: invalid quantity at index %d: %d", i+1, item.Quantity)
		}
		if item.WeightKg < 0 {
			return fmt.Errorf("seed cargo: negative weight at index %d: %g", i+1, item.WeightKg)
		}

		itemID := strings.TrimSpace(item.ItemID)
		if itemID == "" {
			itemID = uuid.NewString()
		}
		item.ItemID = itemID
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed cargo: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO cargo_items (
		item_id,
		cargo_type,
		subtype,
		quantity,
		weight_kg
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed cargo: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rows {
		if _, err := stmt.Exec(c.ItemID, c.Type, c.Subtype, c.Quantity, c.WeightKg); err != nil {
			return fmt.Errorf("seed cargo: insert item_id=%s: %w", c.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed cargo: commit tx: %w", err)
	}

	return nil
}
