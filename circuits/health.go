// Package circuits holds gnark constraint definitions mirroring each proof
// kind's predicate. They are compiled and solved for inspection only; nothing
// here runs a setup or produces a proof.
package circuits

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/healthproof/pkg/proof"
)

func Curve() ecc.ID { return ecc.BN254 }

type VaccinationCircuit struct {
	Required   frontend.Variable `gnark:",public"`
	Vaccinated frontend.Variable
}

func (c *VaccinationCircuit) Define(api frontend.API) error {
	api.AssertIsBoolean(c.Vaccinated)
	api.AssertIsEqual(c.Vaccinated, c.Required)
	return nil
}

type AgeCircuit struct {
	MinimumAge frontend.Variable `gnark:",public"`
	Age        frontend.Variable
}

func (c *AgeCircuit) Define(api frontend.API) error {
	api.AssertIsLessOrEqual(c.MinimumAge, c.Age)
	return nil
}

// HealthCircuit compares field encodings of the status strings, see
// witness.FieldOf.
type HealthCircuit struct {
	Expected frontend.Variable `gnark:",public"`
	Status   frontend.Variable
}

func (c *HealthCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.Status, c.Expected)
	return nil
}

// New returns an empty circuit for k, suitable for compiling.
func New(k proof.Kind) (frontend.Circuit, error) {
	switch k {
	case proof.KindVaccination:
		return &VaccinationCircuit{}, nil
	case proof.KindAge:
		return &AgeCircuit{}, nil
	case proof.KindHealth:
		return &HealthCircuit{}, nil
	}
	return nil, fmt.Errorf("%w: %q", proof.ErrUnknownKind, string(k))
}
