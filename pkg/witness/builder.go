// pkg/witness/builder.go
package witness

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/yourorg/healthproof/circuits"
	"github.com/yourorg/healthproof/pkg/proof"
)

var ErrNegativeAge = errors.New("age must not be negative")

// FieldOf maps a string to a BN254 scalar: keccak256(s) mod r.
func FieldOf(s string) *big.Int {
	h := new(big.Int).SetBytes(crypto.Keccak256([]byte(s)))
	return h.Mod(h, fr.Modulus())
}

func boolVar(b bool) int {
	if b {
		return 1
	}
	return 0
}

// assign builds the circuit assignment for req and the decimal view of its
// public values.
func assign(req proof.Request) (frontend.Circuit, map[string]string, error) {
	switch req.Kind {
	case proof.KindVaccination:
		required := boolVar(req.Public.VaccinationRequired)
		return &circuits.VaccinationCircuit{
				Required:   required,
				Vaccinated: boolVar(req.Private.Vaccinated),
			},
			map[string]string{"required": fmt.Sprint(required)},
			nil

	case proof.KindAge:
		if req.Private.Age < 0 {
			return nil, nil, fmt.Errorf("%w: %d", ErrNegativeAge, req.Private.Age)
		}
		return &circuits.AgeCircuit{
				MinimumAge: req.Public.MinimumAge,
				Age:        req.Private.Age,
			},
			map[string]string{"minimumAge": fmt.Sprint(req.Public.MinimumAge)},
			nil

	case proof.KindHealth:
		expected := FieldOf(req.Public.MinimumStatus)
		return &circuits.HealthCircuit{
				Expected: expected,
				Status:   FieldOf(req.Private.HealthStatus),
			},
			map[string]string{"minimumStatus": expected.String()},
			nil
	}
	return nil, nil, fmt.Errorf("%w: %q", proof.ErrUnknownKind, string(req.Kind))
}

// Build turns a proof request into full and public-only witnesses.
func Build(req proof.Request) (*Bundle, error) {
	assignment, values, err := assign(req)
	if err != nil {
		return nil, err
	}

	field := circuits.Curve().ScalarField()
	full, err := frontend.NewWitness(assignment, field)
	if err != nil {
		return nil, fmt.Errorf("full witness: %w", err)
	}
	pub, err := frontend.NewWitness(assignment, field, frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("public witness: %w", err)
	}

	return &Bundle{
		Full:   full,
		Public: pub,
		Inputs: PublicInputs{
			Kind:    req.Kind,
			Circuit: proof.DescriptorFor(req.Kind).Name,
			Values:  values,
		},
		Assignment: assignment,
	}, nil
}
