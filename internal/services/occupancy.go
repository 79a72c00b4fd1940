package services

import "loadplan-service/internal/domain"

// Occupancy tracks every placement made during one optimize call and
// answers collision and frontier queries against the vehicle envelope.
// It is call-scoped: each Optimize invocation owns its own instance,
// which keeps concurrent calls on independent inputs coordination-free.
type Occupancy struct {
	vehicle    domain.VehicleEnvelope
	placements []domain.Placement
}

func NewOccupancy(vehicle domain.VehicleEnvelope) *Occupancy {
	return &Occupancy{vehicle: vehicle}
}

// Fits reports whether a candidate rectangle lies fully inside the cargo
// bed and has empty overlap with every existing placement. Touching
// boundaries count as non-overlapping, so zero-gap tiling passes.
func (o *Occupancy) Fits(x, y, w, h float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	if x+w > o.vehicle.WidthCm || y+h > o.vehicle.LengthCm {
		return false
	}
	for _, p := range o.placements {
		if rectsOverlap(x, y, w, h, p.X, p.Y, p.WidthCm, p.HeightCm) {
			return false
		}
	}
	return true
}

// HighWaterMark is the furthest longitudinal extent reached by any
// placement. Strategies start their first row here so distinct cargo
// groups stack sequentially along the length axis.
func (o *Occupancy) HighWaterMark() float64 {
	mark := 0.0
	for _, p := range o.placements {
		if end := p.Y + p.HeightCm; end > mark {
			mark = end
		}
	}
	return mark
}

// Add records a placement. Callers are expected to have passed a Fits
// check first; Add itself does not re-check.
func (o *Occupancy) Add(p domain.Placement) {
	o.placements = append(o.placements, p)
}

// Placements returns the current placement set in insertion order.
func (o *Occupancy) Placements() []domain.Placement {
	return o.placements
}

// Vehicle returns the envelope the index was created for.
func (o *Occupancy) Vehicle() domain.VehicleEnvelope {
	return o.vehicle
}

// Strict axis-aligned interval intersection in both axes: two rectangles
// overlap unless one is entirely left of, right of, above, or below the
// other. Closed-boundary touching is not an overlap.
func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	if ax+aw <= bx || bx+bw <= ax {
		return false
	}
	if ay+ah <= by || by+bh <= ay {
		return false
	}
	return true
}
