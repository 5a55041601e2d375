package order

import (
	"fmt"
	"math"
	"strings"

	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrCargoIsNotConstructed = fmt.Errorf("cargo is not constructed")

// MaxCargoWeightKg caps the weight a single order can carry. Heavier loads
// need to be split across orders.
const MaxCargoWeightKg = 20000.0

// Cargo describes what an order carries: the material type, its weight and
// optional free-form description and photo.
type Cargo struct {
	materialType string
	description  string
	photoURL     string
	weightKg     float64

	guard guard.ConstructorGuard
}

// NewCargo creates a Cargo. The material type is required and the weight must
// be a positive number of kilograms. Description and photo URL may be empty.
func NewCargo(materialType string, description string, photoURL string, weightKg float64) (Cargo, error) {
	if strings.TrimSpace(materialType) == "" {
		return Cargo{}, errs.NewValueIsRequiredError("materialType")
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 || weightKg > MaxCargoWeightKg {
		return Cargo{}, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, MaxCargoWeightKg)
	}

	return Cargo{
		materialType: materialType,
		description:  description,
		photoURL:     photoURL,
		weightKg:     weightKg,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Cargo was created through NewCargo.
func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// MaterialType returns the kind of material carried.
func (c Cargo) MaterialType() string {
	return c.materialType
}

// Description returns the free-form cargo description, possibly empty.
func (c Cargo) Description() string {
	return c.description
}

// PhotoURL returns the URL of the cargo photo, possibly empty.
func (c Cargo) PhotoURL() string {
	return c.photoURL
}

// WeightKg returns the cargo weight in kilograms.
func (c Cargo) WeightKg() float64 {
	return c.weightKg
}
