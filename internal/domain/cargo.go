package domain

// CargoType enumerates the cargo shapes the planner knows how to place.
type CargoType string

const (
	CargoTypePallet CargoType = "pallet"
	CargoTypeTank   CargoType = "tank"
	CargoTypeEWC    CargoType = "ewc"
)

// Stackable reports whether units of this type may carry load on top.
// Derived from the type, never user-settable: tanks and loaded pallets
// must stay on the floor, EWC crates are rated for stacking.
func (t CargoType) Stackable() bool {
	return t == CargoTypeEWC
}

// Valid reports whether t is one of the known cargo types.
func (t CargoType) Valid() bool {
	switch t {
	case CargoTypePallet, CargoTypeTank, CargoTypeEWC:
		return true
	}
	return false
}

// Represents one cargo line as entered by the planner: a quantity of
// identical physical units sharing a total weight.
type CargoItem struct {
	ItemID   string
	Type     CargoType
	Subtype  string
	Quantity int
	WeightKg float64
}

// Stackable mirrors the type-derived flag on the item for reporting.
func (c CargoItem) Stackable() bool { return c.Type.Stackable() }

// A single physical, non-divisible cargo piece after quantity expansion.
// Weight is the item's total split evenly across its units.
type Unit struct {
	ItemID   string
	Type     CargoType
	Subtype  string
	WeightKg float64
}

// The 2D oriented rectangle a unit occupies on the cargo floor.
// Circular footprints are normalized to their bounding square
// (WidthCm == HeightCm == diameter).
type Footprint struct {
	WidthCm  float64
	HeightCm float64
}

// Area in cm².
func (f Footprint) Area() float64 { return f.WidthCm * f.HeightCm }
