package services

import "loadplan-service/internal/domain"

// Sideways probe increment used when a position is blocked by occupancy.
const rowProbeStepCm = 20

// PlaceRows is the generic row-major packer used for EWC crates and any
// shape without a dedicated strategy. Units go left-to-right from the
// current high-water mark, advancing by their own width; a blocked
// position is probed sideways in fixed 20 cm steps. A unit that does not
// fit anywhere in the current row opens one new row and retries once —
// failing that it becomes leftover. Deliberately conservative: no search
// beyond that single retry.
func PlaceRows(occ *Occupancy, units []domain.Unit, fp domain.Footprint) []domain.Unit {
	v := occ.Vehicle()
	w, h := fp.WidthCm, fp.HeightCm
	if w <= 0 || h <= 0 {
		return units
	}

	y := occ.HighWaterMark()
	cursor := 0.0
	var leftovers []domain.Unit

	for _, u := range units {
		x, ok := probeRow(occ, cursor, y, w, h, v.WidthCm)
		if !ok {
			// Single retry on a fresh row.
			y += h
			cursor = 0
			x, ok = probeRow(occ, cursor, y, w, h, v.WidthCm)
		}
		if !ok {
			leftovers = append(leftovers, u)
			continue
		}

		occ.Add(domain.Placement{
			ItemID:   u.ItemID,
			Type:     u.Type,
			Subtype:  u.Subtype,
			X:        x,
			Y:        y,
			WidthCm:  w,
			HeightCm: h,
			WeightKg: u.WeightKg,
		})
		cursor = x + w
	}

	return leftovers
}

// probeRow scans one row from the cursor position for the first spot the
// candidate fits, stepping by the probe increment when blocked.
func probeRow(occ *Occupancy, start, y, w, h, bedWidth float64) (float64, bool) {
	for x := start; x+w <= bedWidth; x += rowProbeStepCm {
		if occ.Fits(x, y, w, h) {
			return x, true
		}
	}
	return 0, false
}
