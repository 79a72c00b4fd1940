package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"loadplan-service/internal/domain"
	"loadplan-service/internal/ports"
)

// SQLite-backed implementation of the CargoRepository port.
type SqliteCargoRepository struct{ DB *sql.DB }

func NewSqliteCargoRepository(db *sql.DB) *SqliteCargoRepository {
	return &SqliteCargoRepository{DB: db}
}

// Store a cargo item and return its auto-assigned record key.
func (s *SqliteCargoRepository) CreateItem(ctx context.Context, item domain.CargoItem) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite cargo repository: DB is nil")
	}

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
	res, err := s.DB.ExecContext(ctx, query,
		item.ItemID, string(item.Type), item.Subtype, item.Quantity, item.WeightKg)
	if err != nil {
		return 0, fmt.Errorf("create item: insert cargo item %q: %w", item.ItemID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create item: read inserted id: %w", err)
	}
	return int(id), nil
}

// Return all cargo items stored in the database, in key order.
func (s *SqliteCargoRepository) ListItems(ctx context.Context) ([]ports.CargoRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite cargo repository: DB is nil")
	}

	query := `
	SELECT
		id,
		item_id,
		cargo_type,
		subtype,
		quantity,
		weight_kg
	FROM cargo_items
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: query cargo_items table: %w", err)
	}
	defer rows.Close()

	records := make([]ports.CargoRecord, 0, 64)
	for rows.Next() {
		var rec ports.CargoRecord
		var cargoType string
		err := rows.Scan(&rec.ID, &rec.Item.ItemID, &cargoType, &rec.Item.Subtype,
			&rec.Item.Quantity, &rec.Item.WeightKg)
		if err != nil {
			return nil, fmt.Errorf("list items: scan row: %w", err)
		}
		rec.Item.Type = domain.CargoType(cargoType)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: row iteration: %w", err)
	}
	return records, nil
}

// Remove one cargo item. Absent keys are reported, never an error.
func (s *SqliteCargoRepository) DeleteItem(ctx context.Context, id int) (bool, error) {
	if s.DB == nil {
		return false, errors.New("sqlite cargo repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM cargo_items WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: delete id=%d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete item: rows affected: %w", err)
	}
	return affected > 0, nil
}
