package domain

// The footprint of one placed unit on the cargo floor. X runs across the
// vehicle width, Y along its length from the front wall. Width and Height
// are already oriented. Placements are immutable once created.
type Placement struct {
	ItemID   string
	Type     CargoType
	Subtype  string
	X        float64
	Y        float64
	WidthCm  float64
	HeightCm float64
	WeightKg float64
}

// Area in cm².
func (p Placement) Area() float64 { return p.WidthCm * p.HeightCm }

// CenterY is the longitudinal center used for axle load distribution.
func (p Placement) CenterY() float64 { return p.Y + p.HeightCm/2 }

// A rectangle of cargo floor known to be free of any placement,
// assembled from merged 20 cm scan cells.
type Gap struct {
	X        float64
	Y        float64
	WidthCm  float64
	HeightCm float64
}

// Area in cm².
func (g Gap) Area() float64 { return g.WidthCm * g.HeightCm }
