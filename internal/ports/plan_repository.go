package ports

import (
	"context"
	"time"

	"loadplan-service/internal/domain"
)

// A saved optimization result together with its record key.
type PlanRecord struct {
	ID        int
	CreatedAt time.Time
	Plan      domain.LoadPlan
}

// Port: a boundary for persisting finished load plans.
type PlanRepository interface {
	// Store a plan and return its assigned record key.
	CreatePlan(ctx context.Context, plan domain.LoadPlan) (int, error)
	// Retrieve all saved plans in key order.
	ListPlans(ctx context.Context) ([]PlanRecord, error)
	// Retrieve one plan by key. An absent key reports found=false and
	// no error.
	GetPlan(ctx context.Context, id int) (*PlanRecord, bool, error)
}
