package services

import (
	"sort"

	"loadplan-service/internal/domain"
)

// Side length of the floor-sampling grid cell.
const gapCellCm = 20

// ScanGaps samples the cargo floor on a fixed 20x20 cm grid after all
// cargo placement has completed. A cell is free iff no placement overlaps
// it; adjacent free cells are merged into maximal horizontal runs and
// runs of identical span are merged across consecutive grid rows, so the
// returned rectangles are large enough to rank against airbag footprints.
func ScanGaps(occ *Occupancy) []domain.Gap {
	v := occ.Vehicle()
	placements := occ.Placements()

	cols := int(v.WidthCm) / gapCellCm
	rowsN := int(v.LengthCm) / gapCellCm
	if cols <= 0 || rowsN <= 0 {
		return nil
	}

	// Horizontal runs of free cells per grid row.
	type run struct {
		x, y, w, h float64
	}
	var open []run

	cellFree := func(cx, cy int) bool {
		x := float64(cx * gapCellCm)
		y := float64(cy * gapCellCm)
		for _, p := range placements {
			if rectsOverlap(x, y, gapCellCm, gapCellCm, p.X, p.Y, p.WidthCm, p.HeightCm) {
				return false
			}
		}
		return true
	}

	var gaps []domain.Gap
	for cy := 0; cy < rowsN; cy++ {
		var rowRuns []run
		runStart := -1
		for cx := 0; cx <= cols; cx++ {
			if cx < cols && cellFree(cx, cy) {
				if runStart < 0 {
					runStart = cx
				}
				continue
			}
			if runStart >= 0 {
				rowRuns = append(rowRuns, run{
					x: float64(runStart * gapCellCm),
					y: float64(cy * gapCellCm),
					w: float64((cx - runStart) * gapCellCm),
					h: gapCellCm,
				})
				runStart = -1
			}
		}

		// Extend open runs downward when the row repeats the same span,
		// otherwise close them out.
		var next []run
		for _, o := range open {
			extended := false
			for i, r := range rowRuns {
				if r.x == o.x && r.w == o.w {
					o.h += gapCellCm
					next = append(next, o)
					rowRuns = append(rowRuns[:i], rowRuns[i+1:]...)
					extended = true
					break
				}
			}
			if !extended {
				gaps = append(gaps, domain.Gap{X: o.x, Y: o.y, WidthCm: o.w, HeightCm: o.h})
			}
		}
		next = append(next, rowRuns...)
		open = next
	}
	for _, o := range open {
		gaps = append(gaps, domain.Gap{X: o.x, Y: o.y, WidthCm: o.w, HeightCm: o.h})
	}

	// Largest first; ties ordered by position so identical inputs always
	// produce identical output.
	sort.SliceStable(gaps, func(i, j int) bool {
		ai, aj := gaps[i].Area(), gaps[j].Area()
		if ai != aj {
			return ai > aj
		}
		if gaps[i].Y != gaps[j].Y {
			return gaps[i].Y < gaps[j].Y
		}
		return gaps[i].X < gaps[j].X
	})
	return gaps
}

// FillDunnage greedily assigns airbags to the scanned gaps, largest gap
// first: a gap taking a standard airbag (80x60) consumes one while
// inventory lasts, else a gap taking a small airbag (60x40) consumes one.
// The 3d-shape and pallet-stabilizer kinds are never auto-assigned.
func FillDunnage(gaps []domain.Gap, inv domain.DunnageInventory) domain.DunnageUsage {
	var usage domain.DunnageUsage
	for _, g := range gaps {
		switch {
		case usage.Standard < inv.Standard && gapHolds(g, domain.DunnageStandard):
			usage.Standard++
		case usage.Small < inv.Small && gapHolds(g, domain.DunnageSmall):
			usage.Small++
		}
	}
	return usage
}

// gapHolds reports whether the airbag footprint fits the gap in either
// orientation.
func gapHolds(g domain.Gap, kind domain.DunnageKind) bool {
	fp, ok := DunnageFootprint(kind)
	if !ok {
		return false
	}
	return (g.WidthCm >= fp.WidthCm && g.HeightCm >= fp.HeightCm) ||
		(g.WidthCm >= fp.HeightCm && g.HeightCm >= fp.WidthCm)
}
