package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadplan-service/internal/domain"
)

func TestExpandUnitsSplitsWeightEvenly(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "A", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 4, WeightKg: 1000},
		{ItemID: "B", Type: domain.CargoTypeTank, Subtype: "big", Quantity: 1, WeightKg: 900},
		{ItemID: "C", Type: domain.CargoTypeEWC, Subtype: "ewc1", Quantity: 0, WeightKg: 50},
	}

	units := ExpandUnits(items)

	require.Len(t, units, 5, "zero-quantity lines are dropped")
	for i := 0; i < 4; i++ {
		assert.Equal(t, "A", units[i].ItemID)
		assert.Equal(t, 250.0, units[i].WeightKg)
	}
	assert.Equal(t, 900.0, units[4].WeightKg)
}

func TestOptimizeThreeEuropallets(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "PAL-1", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 3, WeightKg: 1200},
	}

	plan := Optimize(items, testVehicle(), domain.DunnageInventory{})

	require.Len(t, plan.Placements, 3)
	assert.Empty(t, plan.RemainingItems)

	// Short orientation across the 248 cm width: 3 x 80 = 240.
	for i, p := range plan.Placements {
		assert.Equal(t, float64(i)*80, p.X)
		assert.Equal(t, 80.0, p.WidthCm)
		assert.Equal(t, 400.0, p.WeightKg)
	}
	assert.Positive(t, plan.SpaceUtilizationPct)
	assert.InDelta(t, 1200, plan.TotalWeightKg, 1e-9)
}

func TestOptimizeFourEuropallets(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "PAL-1", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 4, WeightKg: 1600},
	}

	plan := Optimize(items, testVehicle(), domain.DunnageInventory{})

	require.Len(t, plan.Placements, 4)
	assert.Empty(t, plan.RemainingItems)
	for _, p := range plan.Placements {
		assert.Equal(t, 120.0, p.WidthCm, "long orientation across the width")
	}
}

func TestOptimizeTankGroupsIndependently(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "TNK-B", Type: domain.CargoTypeTank, Subtype: "big", Quantity: 1, WeightKg: 900},
		{ItemID: "TNK-S", Type: domain.CargoTypeTank, Subtype: "small", Quantity: 1, WeightKg: 300},
	}
	vehicle := domain.VehicleEnvelope{
		LengthCm: 1200, WidthCm: 235, MaxWeightKg: 20000,
		FrontAxleLimitKg: 9000, RearAxleLimitKg: 11000,
		Zones: domain.DefaultZones(1200),
	}

	plan := Optimize(items, vehicle, domain.DunnageInventory{})

	require.Len(t, plan.Placements, 2)
	assert.Empty(t, plan.RemainingItems)

	big, small := plan.Placements[0], plan.Placements[1]
	assert.Equal(t, 100.0, big.WidthCm)
	assert.Equal(t, 60.0, small.WidthCm)
	assert.False(t, rectsOverlap(
		big.X, big.Y, big.WidthCm, big.HeightCm,
		small.X, small.Y, small.WidthCm, small.HeightCm,
	), "independently packed groups must not overlap")
	assert.GreaterOrEqual(t, small.Y, big.Y+big.HeightCm)
}

func TestOptimizeUnknownSubtypeGoesToRemaining(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "MYST", Type: domain.CargoTypePallet, Subtype: "nonstandard", Quantity: 2, WeightKg: 500},
	}

	plan := Optimize(items, testVehicle(), domain.DunnageInventory{})

	assert.Empty(t, plan.Placements)
	require.Len(t, plan.RemainingItems, 1)
	assert.Equal(t, "MYST", plan.RemainingItems[0].ItemID)
	assert.Equal(t, 2, plan.RemainingItems[0].Quantity)
	assert.InDelta(t, 500, plan.RemainingItems[0].WeightKg, 1e-9)
	assert.Zero(t, plan.TotalWeightKg)
	assert.Zero(t, plan.SpaceUtilizationPct)
}

func TestOptimizeRemainingKeepsDistinctLinesPerID(t *testing.T) {
	// Same identifier on two lines with different geometry: both are
	// unplaceable and must stay separate remaining lines.
	items := []domain.CargoItem{
		{ItemID: "DUP", Type: domain.CargoTypePallet, Subtype: "oversize", Quantity: 2, WeightKg: 600},
		{ItemID: "DUP", Type: domain.CargoTypeEWC, Subtype: "oversize", Quantity: 1, WeightKg: 90},
	}

	plan := Optimize(items, testVehicle(), domain.DunnageInventory{})

	assert.Empty(t, plan.Placements)
	require.Len(t, plan.RemainingItems, 2)
	assert.Equal(t, domain.CargoTypePallet, plan.RemainingItems[0].Type)
	assert.Equal(t, 2, plan.RemainingItems[0].Quantity)
	assert.InDelta(t, 600, plan.RemainingItems[0].WeightKg, 1e-9)
	assert.Equal(t, domain.CargoTypeEWC, plan.RemainingItems[1].Type)
	assert.Equal(t, 1, plan.RemainingItems[1].Quantity)
}

func TestOptimizeMixedCargoInvariants(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "PAL-1", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 4, WeightKg: 1600},
		{ItemID: "EWC-1", Type: domain.CargoTypeEWC, Subtype: "ewc2", Quantity: 5, WeightKg: 200},
		{ItemID: "PAL-2", Type: domain.CargoTypePallet, Subtype: "half", Quantity: 2, WeightKg: 300},
	}
	v := testVehicle()

	plan := Optimize(items, v, domain.DunnageInventory{Standard: 2, Small: 2})

	// Bounds invariant.
	for _, p := range plan.Placements {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.X+p.WidthCm, v.WidthCm)
		assert.LessOrEqual(t, p.Y+p.HeightCm, v.LengthCm)
	}

	// No-overlap invariant across all placed rectangles.
	for i := 0; i < len(plan.Placements); i++ {
		for j := i + 1; j < len(plan.Placements); j++ {
			a, b := plan.Placements[i], plan.Placements[j]
			assert.False(t, rectsOverlap(
				a.X, a.Y, a.WidthCm, a.HeightCm,
				b.X, b.Y, b.WidthCm, b.HeightCm,
			), "placements %d and %d overlap", i, j)
		}
	}

	// Weight conservation: placed plus remaining equals the input total.
	var placedWeight, remainingWeight float64
	for _, p := range plan.Placements {
		placedWeight += p.WeightKg
	}
	for _, item := range plan.RemainingItems {
		remainingWeight += item.WeightKg
	}
	assert.InDelta(t, placedWeight, plan.TotalWeightKg, 1e-9)
	assert.InDelta(t, 2100, placedWeight+remainingWeight, 1e-9)

	// Zone labels follow the width-midpoint rule.
	for _, p := range plan.Placements {
		want := "Rear"
		if p.X < v.WidthCm/2 {
			want = "Front"
		}
		assert.Equal(t, want, p.ZoneLabel)
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "PAL-1", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 5, WeightKg: 2000},
		{ItemID: "TNK-1", Type: domain.CargoTypeTank, Subtype: "small", Quantity: 4, WeightKg: 1200},
		{ItemID: "EWC-1", Type: domain.CargoTypeEWC, Subtype: "ewc1", Quantity: 7, WeightKg: 280},
	}
	inv := domain.DunnageInventory{Standard: 3, Small: 3}

	first := Optimize(items, testVehicle(), inv)
	second := Optimize(items, testVehicle(), inv)

	assert.Equal(t, first, second)
}

func TestOptimizeConcurrentCallers(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "PAL-1", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 6, WeightKg: 2400},
		{ItemID: "EWC-1", Type: domain.CargoTypeEWC, Subtype: "ewc2", Quantity: 3, WeightKg: 120},
	}
	inv := domain.DunnageInventory{Standard: 1, Small: 1}
	want := Optimize(items, testVehicle(), inv)

	var wg sync.WaitGroup
	results := make([]domain.LoadPlan, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Optimize(items, testVehicle(), inv)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "concurrent call %d diverged", i)
	}
}

func TestOptimizeDunnageBoundedByInventory(t *testing.T) {
	items := []domain.CargoItem{
		{ItemID: "PAL-1", Type: domain.CargoTypePallet, Subtype: "europallet", Quantity: 3, WeightKg: 1200},
	}
	inv := domain.DunnageInventory{Standard: 1, Small: 2}

	plan := Optimize(items, testVehicle(), inv)

	assert.LessOrEqual(t, plan.Dunnage.Standard, inv.Standard)
	assert.LessOrEqual(t, plan.Dunnage.Small, inv.Small)
	assert.Zero(t, plan.Dunnage.ThreeD)
	assert.Zero(t, plan.Dunnage.PalletStabilizer)
}
