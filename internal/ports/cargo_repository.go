package ports

import (
	"context"

	"loadplan-service/internal/domain"
)

// A stored cargo item together with its record key.
type CargoRecord struct {
	ID   int
	Item domain.CargoItem
}

// Port: a boundary for persisting cargo items awaiting planning.
// Records are keyed by auto-incrementing integer identifiers.
type CargoRepository interface {
	// Store an item and return its assigned record key.
	CreateItem(ctx context.Context, item domain.CargoItem) (int, error)
	// Retrieve all stored items in key order.
	ListItems(ctx context.Context) ([]CargoRecord, error)
	// Remove an item. Deletion is idempotent: an absent key reports
	// found=false and no error.
	DeleteItem(ctx context.Context, id int) (bool, error)
}
