package services

import "loadplan-service/internal/domain"

// Optimize converts an unordered cargo list plus a vehicle envelope into
// a concrete 2D placement plan, dunnage allocation, and axle-load
// distribution in a single deterministic pass:
//
//  1. normalize: explode quantities into unit-weight singletons,
//  2. group units by (type, subtype) preserving first-seen order,
//  3. dispatch the matching placement strategy per group over one shared
//     call-scoped occupancy index,
//  4. scan the remaining floor for gaps and fill dunnage,
//  5. derive utilization and axle-load metrics.
//
// The engine performs no I/O, never fails: units it cannot place are
// reported as remaining items on an otherwise complete plan. Degenerate
// envelopes are not re-validated and simply yield empty placements.
func Optimize(items []domain.CargoItem, vehicle domain.VehicleEnvelope, inv domain.DunnageInventory) domain.LoadPlan {
	units := ExpandUnits(items)
	keys, groups := groupUnits(units)

	occ := NewOccupancy(vehicle)
	var leftovers []domain.Unit

	for _, key := range keys {
		group := groups[key]
		fp, ok := LookupFootprint(group[0].Type, group[0].Subtype)
		if !ok {
			// Unrecognized geometry is not fatal: the whole group is
			// routed to leftovers without blocking other groups.
			leftovers = append(leftovers, group...)
			continue
		}

		switch group[0].Type {
		case domain.CargoTypePallet:
			leftovers = append(leftovers, PlacePallets(occ, group, fp)...)
		case domain.CargoTypeTank:
			leftovers = append(leftovers, PlaceTanks(occ, group, fp)...)
		default:
			leftovers = append(leftovers, PlaceRows(occ, group, fp)...)
		}
	}

	gaps := ScanGaps(occ)
	usage := FillDunnage(gaps, inv)
	metrics := ComputeLoadMetrics(vehicle, occ.Placements())

	plan := domain.LoadPlan{
		Vehicle:              vehicle,
		Placements:           labelPlacements(vehicle, occ.Placements()),
		RemainingItems:       collectRemaining(leftovers),
		Dunnage:              usage,
		TotalWeightKg:        metrics.TotalWeightKg,
		FrontAxleLoadKg:      metrics.FrontAxleLoadKg,
		RearAxleLoadKg:       metrics.RearAxleLoadKg,
		SpaceUtilizationPct:  metrics.SpaceUtilizationPct,
		WeightUtilizationPct: metrics.WeightUtilizationPct,
		Balance:              metrics.Balance,
		Gaps:                 gaps,
	}
	return plan
}

// ExpandUnits explodes every item with quantity > 1 into that many
// singletons carrying an even share of the item's total weight. The
// transform runs once, before grouping; downstream weight-sum invariants
// assume one placement per physical unit.
func ExpandUnits(items []domain.CargoItem) []domain.Unit {
	var units []domain.Unit
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		unitWeight := item.WeightKg / float64(item.Quantity)
		for i := 0; i < item.Quantity; i++ {
			units = append(units, domain.Unit{
				ItemID:   item.ItemID,
				Type:     item.Type,
				Subtype:  item.Subtype,
				WeightKg: unitWeight,
			})
		}
	}
	return units
}

// groupUnits buckets units by (type, subtype), keeping group order by
// first appearance so identical inputs always dispatch identically.
func groupUnits(units []domain.Unit) ([]string, map[string][]domain.Unit) {
	var keys []string
	groups := make(map[string][]domain.Unit)
	for _, u := range units {
		key := string(u.Type) + "/" + u.Subtype
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], u)
	}
	return keys, groups
}

// labelPlacements assigns the reporting zone label using the single
// midpoint rule of the engine boundary: placements starting left of the
// width midpoint report "Front", the rest "Rear".
func labelPlacements(v domain.VehicleEnvelope, placements []domain.Placement) []domain.PlacedItem {
	placed := make([]domain.PlacedItem, 0, len(placements))
	for _, p := range placements {
		label := "Rear"
		if p.X < v.WidthCm/2 {
			label = "Front"
		}
		placed = append(placed, domain.PlacedItem{Placement: p, ZoneLabel: label})
	}
	return placed
}

// collectRemaining re-aggregates leftover units into per-item lines
// (count of unplaced units, their summed weight), preserving first-seen
// order. Units are keyed by (id, type, subtype) so input lines sharing
// an identifier never merge across geometries.
func collectRemaining(leftovers []domain.Unit) []domain.CargoItem {
	type lineKey struct {
		id      string
		typ     domain.CargoType
		subtype string
	}
	var order []lineKey
	byKey := make(map[lineKey]*domain.CargoItem)
	for _, u := range leftovers {
		key := lineKey{id: u.ItemID, typ: u.Type, subtype: u.Subtype}
		item, ok := byKey[key]
		if !ok {
			order = append(order, key)
			item = &domain.CargoItem{ItemID: u.ItemID, Type: u.Type, Subtype: u.Subtype}
			byKey[key] = item
		}
		item.Quantity++
		item.WeightKg += u.WeightKg
	}

	remaining := make([]domain.CargoItem, 0, len(order))
	for _, key := range order {
		remaining = append(remaining, *byKey[key])
	}
	return remaining
}
