package circuits

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/yourorg/healthproof/pkg/proof"
)

var (
	mu       sync.Mutex
	compiled = map[proof.Kind]constraint.ConstraintSystem{}
)

// Compile builds the R1CS for k once and reuses it afterwards.
func Compile(k proof.Kind) (constraint.ConstraintSystem, error) {
	mu.Lock()
	defer mu.Unlock()

	if cs, ok := compiled[k]; ok {
		return cs, nil
	}

	c, err := New(k)
	if err != nil {
		return nil, err
	}
	cs, err := frontend.Compile(Curve().ScalarField(), r1cs.NewBuilder, c)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", k, err)
	}
	compiled[k] = cs
	return cs, nil
}

// ConstraintCount is the real size of the compiled system, as opposed to the
// display figure in proof.Descriptor.
func ConstraintCount(k proof.Kind) (int, error) {
	cs, err := Compile(k)
	if err != nil {
		return 0, err
	}
	return cs.GetNbConstraints(), nil
}

// Check runs the constraint solver on a full witness for k. A nil error
// means every constraint holds.
func Check(k proof.Kind, full witness.Witness) error {
	cs, err := Compile(k)
	if err != nil {
		return err
	}
	return cs.IsSolved(full)
}
