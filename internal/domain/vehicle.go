package domain

// Fraction of vehicle length at which the axle reference points sit,
// measured from the front wall.
const (
	FrontAxleFraction = 0.2
	RearAxleFraction  = 0.8
)

// A named longitudinal region of the cargo bed, half-open along the
// length axis: [FromCm, ToCm).
type Zone struct {
	Label  string
	FromCm float64
	ToCm   float64
}

// Contains reports whether the longitudinal coordinate y falls inside the zone.
func (z Zone) Contains(y float64) bool {
	return y >= z.FromCm && y < z.ToCm
}

// Geometric and weight envelope of one vehicle cargo bed.
// Zones must be non-overlapping and ordered along the length axis;
// the engine does not re-validate this.
type VehicleEnvelope struct {
	LengthCm         float64
	WidthCm          float64
	HeightCm         float64
	MaxWeightKg      float64
	FrontAxleLimitKg float64
	RearAxleLimitKg  float64
	Zones            []Zone
}

// FrontAxleRef is the longitudinal reference point for the front axle.
func (v VehicleEnvelope) FrontAxleRef() float64 {
	return FrontAxleFraction * v.LengthCm
}

// RearAxleRef is the longitudinal reference point for the rear axle.
func (v VehicleEnvelope) RearAxleRef() float64 {
	return RearAxleFraction * v.LengthCm
}

// FloorArea in cm².
func (v VehicleEnvelope) FloorArea() float64 {
	return v.LengthCm * v.WidthCm
}

// DefaultZones splits the bed into two equal named halves along the length.
func DefaultZones(lengthCm float64) []Zone {
	half := lengthCm / 2
	return []Zone{
		{Label: "Front Zone", FromCm: 0, ToCm: half},
		{Label: "Rear Zone", FromCm: half, ToCm: lengthCm},
	}
}
