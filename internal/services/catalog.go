package services

import "loadplan-service/internal/domain"

// Static geometry catalog: footprint dimensions by cargo type and subtype.
// Circular footprints (tanks) are normalized to their bounding square.
// Unknown pairs return ok=false and must be routed to leftovers by the
// caller, never placed.

var palletFootprints = map[string]domain.Footprint{
	"europallet": {WidthCm: 120, HeightCm: 80},
	"industrial": {WidthCm: 120, HeightCm: 100},
	"half":       {WidthCm: 80, HeightCm: 60},
}

var tankDiameters = map[string]float64{
	"big":   100,
	"small": 60,
	"ibc":   120,
}

var ewcFootprints = map[string]domain.Footprint{
	"ewc1": {WidthCm: 60, HeightCm: 40},
	"ewc2": {WidthCm: 80, HeightCm: 60},
	"ewc3": {WidthCm: 120, HeightCm: 100},
}

var dunnageFootprints = map[domain.DunnageKind]domain.Footprint{
	domain.DunnageStandard:         {WidthCm: 80, HeightCm: 60},
	domain.DunnageSmall:            {WidthCm: 60, HeightCm: 40},
	domain.Dunnage3D:               {WidthCm: 100, HeightCm: 100},
	domain.DunnagePalletStabilizer: {WidthCm: 120, HeightCm: 80},
}

// LookupFootprint returns the floor footprint for a (type, subtype) pair.
func LookupFootprint(t domain.CargoType, subtype string) (domain.Footprint, bool) {
	switch t {
	case domain.CargoTypePallet:
		fp, ok := palletFootprints[subtype]
		return fp, ok
	case domain.CargoTypeTank:
		d, ok := tankDiameters[subtype]
		return domain.Footprint{WidthCm: d, HeightCm: d}, ok
	case domain.CargoTypeEWC:
		fp, ok := ewcFootprints[subtype]
		return fp, ok
	}
	return domain.Footprint{}, false
}

// DunnageFootprint returns the floor footprint of one airbag unit.
func DunnageFootprint(kind domain.DunnageKind) (domain.Footprint, bool) {
	fp, ok := dunnageFootprints[kind]
	return fp, ok
}
