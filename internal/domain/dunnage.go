package domain

// DunnageKind enumerates the airbag filler variants carried on board.
type DunnageKind string

const (
	DunnageStandard         DunnageKind = "standard"
	DunnageSmall            DunnageKind = "small"
	Dunnage3D               DunnageKind = "3d-shape"
	DunnagePalletStabilizer DunnageKind = "pallet-stabilizer"
)

// Per-kind airbag counts available before a planning run.
type DunnageInventory struct {
	Standard         int
	Small            int
	ThreeD           int
	PalletStabilizer int
}

// Per-kind airbag counts consumed by gap filling. Usage never exceeds
// the corresponding inventory count. The 3d-shape and pallet-stabilizer
// kinds are tracked but reserved for manual allocation, so the automatic
// filler leaves them at zero.
type DunnageUsage struct {
	Standard         int
	Small            int
	ThreeD           int
	PalletStabilizer int
}
