package services

import "loadplan-service/internal/domain"

// Pallet strategy: rows of rectangular pallets packed against the front
// of the free region. Exact unit counts that planners load in practice
// carry a precomputed row configuration chosen to maximize width
// utilization for that count; anything else falls back to a computed
// best-fit tiling.

// One row of a pallet configuration: how many units and whether the long
// side of the pallet lies across the vehicle width.
type palletRow struct {
	perRow int
	long   bool
}

// Europallet unit dimensions the configuration table was tuned for.
const (
	europalletLongCm  = 120.0
	europalletShortCm = 80.0
)

// Exact-count configuration table for the 120x80 europallet unit. The
// row/orientation choices per count are tuned to that footprint and are
// pinned; downstream plans and their tests rely on these placements.
// Other pallet footprints always use the computed fallback.
var palletConfigs = map[int][]palletRow{
	3: {{3, false}},
	4: {{2, true}, {2, true}},
	5: {{2, true}, {3, false}},
	6: {{3, false}, {3, false}},
	7: {{2, true}, {2, true}, {3, false}},
	8: {{2, true}, {2, true}, {2, true}, {2, true}},
	9: {{3, false}, {3, false}, {3, false}},
}

func init() {
	// Bulk FTL case: 33 europallets as 11 short-oriented rows of 3.
	bulk := make([]palletRow, 11)
	for i := range bulk {
		bulk[i] = palletRow{perRow: 3}
	}
	palletConfigs[33] = bulk
}

// PlacePallets lays out one pallet group and returns the units that
// found no valid position.
func PlacePallets(occ *Occupancy, units []domain.Unit, fp domain.Footprint) []domain.Unit {
	long := fp.WidthCm
	short := fp.HeightCm
	if short > long {
		long, short = short, long
	}

	rows, ok := []palletRow(nil), false
	if long == europalletLongCm && short == europalletShortCm {
		rows, ok = palletConfigs[len(units)]
	}
	if !ok {
		rows = fallbackPalletRows(occ.Vehicle(), len(units), long, short)
	}
	if len(rows) == 0 {
		return units
	}

	y := occ.HighWaterMark()
	idx := 0
	for _, row := range rows {
		if idx >= len(units) {
			break
		}
		across, depth := short, long
		if row.long {
			across, depth = long, short
		}

		// Units tile left-to-right with zero gap. A failed fit aborts the
		// whole row rather than skipping sideways.
		x := 0.0
		for i := 0; i < row.perRow && idx < len(units); i++ {
			if !occ.Fits(x, y, across, depth) {
				break
			}
			u := units[idx]
			occ.Add(domain.Placement{
				ItemID:   u.ItemID,
				Type:     u.Type,
				Subtype:  u.Subtype,
				X:        x,
				Y:        y,
				WidthCm:  across,
				HeightCm: depth,
				WeightKg: u.WeightKg,
			})
			idx++
			x += across
		}
		y += depth
	}

	return units[idx:]
}

// fallbackPalletRows computes a tiling for counts outside the table:
// prefer the orientation that fits at least two units across the width,
// taking the higher per-row count when both do.
func fallbackPalletRows(v domain.VehicleEnvelope, count int, long, short float64) []palletRow {
	perLong := 0
	if long > 0 {
		perLong = int(v.WidthCm / long)
	}
	perShort := 0
	if short > 0 {
		perShort = int(v.WidthCm / short)
	}

	var perRow int
	var useLong bool
	switch {
	case perShort >= 2 && perShort >= perLong:
		perRow, useLong = perShort, false
	case perLong >= 2:
		perRow, useLong = perLong, true
	case perShort >= 1:
		perRow, useLong = perShort, false
	case perLong >= 1:
		perRow, useLong = perLong, true
	default:
		return nil
	}

	nRows := (count + perRow - 1) / perRow
	rows := make([]palletRow, nRows)
	for i := range rows {
		rows[i] = palletRow{perRow: perRow, long: useLong}
	}
	return rows
}
