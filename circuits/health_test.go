package circuits

import (
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/healthproof/pkg/proof"
)

/* ---------------- solver vectors ---------------- */

func TestVaccinationCircuit(t *testing.T) {
	field := Curve().ScalarField()

	require.NoError(t, test.IsSolved(&VaccinationCircuit{},
		&VaccinationCircuit{Required: 1, Vaccinated: 1}, field))
	require.Error(t, test.IsSolved(&VaccinationCircuit{},
		&VaccinationCircuit{Required: 1, Vaccinated: 0}, field))
	// not a boolean
	require.Error(t, test.IsSolved(&VaccinationCircuit{},
		&VaccinationCircuit{Required: 2, Vaccinated: 2}, field))
}

func TestAgeCircuit(t *testing.T) {
	field := Curve().ScalarField()

	vec := []struct {
		age int
		ok  bool
	}{
		{0, false}, {17, false}, {18, true}, {19, true}, {120, true},
	}
	for _, v := range vec {
		err := test.IsSolved(&AgeCircuit{}, &AgeCircuit{MinimumAge: 18, Age: v.age}, field)
		if v.ok {
			require.NoError(t, err, "age %d", v.age)
		} else {
			require.Error(t, err, "age %d", v.age)
		}
	}
}

func TestHealthCircuit(t *testing.T) {
	field := Curve().ScalarField()

	require.NoError(t, test.IsSolved(&HealthCircuit{},
		&HealthCircuit{Expected: 42, Status: 42}, field))
	require.Error(t, test.IsSolved(&HealthCircuit{},
		&HealthCircuit{Expected: 42, Status: 41}, field))
}

/* ---------------- compile ---------------- */

func TestConstraintCounts(t *testing.T) {
	for _, k := range proof.Kinds() {
		n, err := ConstraintCount(k)
		require.NoError(t, err, k)
		require.Greater(t, n, 0, k)
	}

	// the comparison dominates the other two systems
	age, _ := ConstraintCount(proof.KindAge)
	health, _ := ConstraintCount(proof.KindHealth)
	require.Greater(t, age, health)
}

func TestCompileCached(t *testing.T) {
	a, err := Compile(proof.KindAge)
	require.NoError(t, err)
	b, err := Compile(proof.KindAge)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestCheck(t *testing.T) {
	full, err := frontend.NewWitness(&AgeCircuit{MinimumAge: 18, Age: 30}, Curve().ScalarField())
	require.NoError(t, err)
	require.NoError(t, Check(proof.KindAge, full))

	full, err = frontend.NewWitness(&AgeCircuit{MinimumAge: 18, Age: 3}, Curve().ScalarField())
	require.NoError(t, err)
	require.Error(t, Check(proof.KindAge, full))
}

func TestUnknownKind(t *testing.T) {
	_, err := New(proof.Kind("blood"))
	require.ErrorIs(t, err, proof.ErrUnknownKind)

	_, err = ConstraintCount(proof.Kind("blood"))
	require.ErrorIs(t, err, proof.ErrUnknownKind)
}
