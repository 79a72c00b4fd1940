package dto

import "time"

type ZonePayload struct {
	Label  string  `json:"label"`
	FromCm float64 `json:"from_cm"`
	ToCm   float64 `json:"to_cm"`
}

type VehiclePayload struct {
	LengthCm         float64       `json:"length_cm"`
	WidthCm          float64       `json:"width_cm"`
	HeightCm         float64       `json:"height_cm"`
	MaxWeightKg      float64       `json:"max_weight_kg"`
	FrontAxleLimitKg float64       `json:"front_axle_limit_kg"`
	RearAxleLimitKg  float64       `json:"rear_axle_limit_kg"`
	Zones            []ZonePayload `json:"zones,omitempty"`
}

type DunnagePayload struct {
	Standard         int `json:"standard"`
	Small            int `json:"small"`
	ThreeD           int `json:"3d_shape"`
	PalletStabilizer int `json:"pallet_stabilizer"`
}

// PlanRequest carries everything one optimize call needs. When Items is
// empty the stored cargo items are planned instead.
type PlanRequest struct {
	Vehicle VehiclePayload `json:"vehicle"`
	Dunnage DunnagePayload `json:"dunnage"`
	Items   []ItemRequest  `json:"items,omitempty"`
}

type PlacementResponse struct {
	ItemID   string  `json:"item_id"`
	Type     string  `json:"type"`
	Subtype  string  `json:"subtype"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Zone     string  `json:"zone"`
}

type GapResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type RemainingItemResponse struct {
	ItemID   string  `json:"item_id"`
	Type     string  `json:"type"`
	Subtype  string  `json:"subtype"`
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weight_kg"`
}

type PlanResponse struct {
	PlanID               int                     `json:"plan_id"`
	CreatedAt            *time.Time              `json:"created_at,omitempty"`
	Placements           []PlacementResponse     `json:"placements"`
	RemainingItems       []RemainingItemResponse `json:"remaining_items"`
	Dunnage              DunnagePayload          `json:"dunnage_usage"`
	TotalWeightKg        float64                 `json:"total_weight_kg"`
	FrontAxleLoadKg      float64                 `json:"front_axle_load_kg"`
	RearAxleLoadKg       float64                 `json:"rear_axle_load_kg"`
	SpaceUtilizationPct  int                     `json:"space_utilization_pct"`
	WeightUtilizationPct int                     `json:"weight_utilization_pct"`
	Balance              string                  `json:"balance"`
	Gaps                 []GapResponse           `json:"gaps"`
}

type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}
