package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// GarmentKind represents the closed set of garment kinds a pressing accepts.
// Item payloads are validated against this enumeration at the boundary before
// entering the engine; anything outside it is rejected.
type GarmentKind int

const (
	// GarmentUnknown represents an invalid or undefined garment kind.
	GarmentUnknown GarmentKind = iota

	GarmentShirt
	GarmentPants
	GarmentDress
	GarmentSuit
	GarmentCoat
	GarmentBedding
	GarmentCurtains
)

func getGarmentKindStrings() map[GarmentKind]string {
	return map[GarmentKind]string{
		GarmentUnknown:  "unknown",
		GarmentShirt:    "shirt",
		GarmentPants:    "pants",
		GarmentDress:    "dress",
		GarmentSuit:     "suit",
		GarmentCoat:     "coat",
		GarmentBedding:  "bedding",
		GarmentCurtains: "curtains",
	}
}

func getValidGarmentKindStrings() map[GarmentKind]string {
	//nolint:exhaustive // GarmentUnknown is intentionally excluded as it's invalid
	return map[GarmentKind]string{
		GarmentShirt:    "shirt",
		GarmentPants:    "pants",
		GarmentDress:    "dress",
		GarmentSuit:     "suit",
		GarmentCoat:     "coat",
		GarmentBedding:  "bedding",
		GarmentCurtains: "curtains",
	}
}

// Validate checks if the GarmentKind value is valid.
func (g GarmentKind) Validate() error {
	if _, ok := getValidGarmentKindStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("garment", fmt.Errorf("%d is not a valid garment kind", g))
	}
	return nil
}

// String returns the wire name of the garment kind ("shirt", "bedding", ...).
// Returns "unknown" for invalid values.
func (g GarmentKind) String() string {
	if str, ok := getGarmentKindStrings()[g]; ok {
		return str
	}
	return "unknown"
}

// GarmentKindFromString parses a wire name into a GarmentKind.
// Returns an error for any string outside the closed enumeration.
func GarmentKindFromString(str string) (GarmentKind, error) {
	for kind, name := range getValidGarmentKindStrings() {
		if name == str {
			return kind, nil
		}
	}
	return GarmentUnknown, errs.NewValueIsInvalidErrorWithCause("garment",
		fmt.Errorf("%q is not a valid garment kind", str))
}
