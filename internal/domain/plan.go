package domain

// BalanceLabel classifies the front/rear axle load distribution.
type BalanceLabel string

const (
	BalanceOptimal    BalanceLabel = "Optimal"
	BalanceUnbalanced BalanceLabel = "Unbalanced"
	BalanceOverloaded BalanceLabel = "Overloaded"
)

// One placed unit in the final plan, annotated with the reporting zone
// label assigned at the engine boundary.
type PlacedItem struct {
	Placement
	ZoneLabel string
}

// LoadPlan is the full output of one optimize call. It is constructed
// fresh per call, never mutated after return, and owned by the caller.
type LoadPlan struct {
	Vehicle              VehicleEnvelope
	Placements           []PlacedItem
	RemainingItems       []CargoItem
	Dunnage              DunnageUsage
	TotalWeightKg        float64
	FrontAxleLoadKg      float64
	RearAxleLoadKg       float64
	SpaceUtilizationPct  int
	WeightUtilizationPct int
	Balance              BalanceLabel
	Gaps                 []Gap
}
