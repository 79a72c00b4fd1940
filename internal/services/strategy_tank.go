package services

import (
	"math"

	"loadplan-service/internal/domain"
)

// Longitudinal advance between tank rows as a fraction of the diameter:
// sqrt(3)/2, the hexagonal close-packing pitch.
var tankRowPitch = math.Sqrt(3) / 2

// PlaceTanks packs circular tanks in centered rows with a zig-zag offset:
// even rows hold floor(width/diameter) tanks, odd rows shift right by half
// a diameter and hold one fewer. Alternating offsets let circles nest, so
// rows advance by diameter*sqrt(3)/2 regardless of parity. The pitch makes
// adjacent rows' bounding squares overlap even though the circles do not,
// so candidates are checked against the vehicle bounds only, never against
// the occupancy fits test; separation from earlier cargo groups comes from
// starting at the high-water mark. Placement stops once the next row would
// cross the end of the bed; the remainder is returned as leftovers.
func PlaceTanks(occ *Occupancy, units []domain.Unit, fp domain.Footprint) []domain.Unit {
	v := occ.Vehicle()
	diameter := fp.WidthCm
	if diameter <= 0 || diameter > v.WidthCm {
		return units
	}

	perRow := int(v.WidthCm / diameter)
	margin := (v.WidthCm - float64(perRow)*diameter) / 2

	y := occ.HighWaterMark()
	idx := 0
	for row := 0; idx < len(units); row++ {
		if y+diameter > v.LengthCm {
			break
		}

		count := perRow
		offset := margin
		if row%2 == 1 {
			count = perRow - 1
			offset = margin + diameter/2
		}
		if count <= 0 {
			// A one-wide bed has no staggered row; keep the straight rows.
			count = perRow
			offset = margin
		}

		for i := 0; i < count && idx < len(units); i++ {
			u := units[idx]
			occ.Add(domain.Placement{
				ItemID:   u.ItemID,
				Type:     u.Type,
				Subtype:  u.Subtype,
				X:        offset + float64(i)*diameter,
				Y:        y,
				WidthCm:  diameter,
				HeightCm: diameter,
				WeightKg: u.WeightKg,
			})
			idx++
		}

		y += diameter * tankRowPitch
	}

	return units[idx:]
}
