package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loadplan-service/internal/domain"
	"loadplan-service/internal/ports"
)

// SQLite-backed implementation of the PlanRepository port. Plans are
// stored as one JSON document per row; the engine output is immutable,
// so there is nothing to query inside it.
type SqlitePlanRepository struct{ DB *sql.DB }

func NewSqlitePlanRepository(db *sql.DB) *SqlitePlanRepository {
	return &SqlitePlanRepository{DB: db}
}

// Store a finished load plan and return its assigned record key.
func (s *SqlitePlanRepository) CreatePlan(ctx context.Context, plan domain.LoadPlan) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite plan repository: DB is nil")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("create plan: marshal plan: %w", err)
	}

	query := `
	INSERT INTO load_plans (created_at, plan_json)
	VALUES (?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), string(payload))
	if err != nil {
		return 0, fmt.Errorf("create plan: insert load plan: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create plan: read inserted id: %w", err)
	}
	return int(id), nil
}

// Return all saved plans in key order.
func (s *SqlitePlanRepository) ListPlans(ctx context.Context) ([]ports.PlanRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite plan repository: DB is nil")
	}

	query := `
	SELECT id, created_at, plan_json
	FROM load_plans
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: query load_plans table: %w", err)
	}
	defer rows.Close()

	records := make([]ports.PlanRecord, 0, 16)
	for rows.Next() {
		rec, err := scanPlanRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: row iteration: %w", err)
	}
	return records, nil
}

// Retrieve one plan by key; absent keys are reported, never an error.
func (s *SqlitePlanRepository) GetPlan(ctx context.Context, id int) (*ports.PlanRecord, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("sqlite plan repository: DB is nil")
	}

	query := `
	SELECT id, created_at, plan_json
	FROM load_plans
	WHERE id = ?;
	`
	row := s.DB.QueryRowContext(ctx, query, id)
	rec, err := scanPlanRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan: id=%d: %w", id, err)
	}
	return &rec, true, nil
}

func scanPlanRow(scan func(dest ...any) error) (ports.PlanRecord, error) {
	var rec ports.PlanRecord
	var createdAt, payload string
	if err := scan(&rec.ID, &createdAt, &payload); err != nil {
		return rec, err
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return rec, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = ts

	if err := json.Unmarshal([]byte(payload), &rec.Plan); err != nil {
		return rec, fmt.Errorf("unmarshal plan json: %w", err)
	}
	return rec, nil
}
