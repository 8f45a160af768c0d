package witness

import (
	backendwitness "github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/healthproof/pkg/proof"
)

// PublicInputs is the JSON view of a bundle's public assignment.
type PublicInputs struct {
	Kind    proof.Kind        `json:"kind"`
	Circuit string            `json:"circuit"`
	Values  map[string]string `json:"values"` // field elements as decimal strings
}

type Bundle struct {
	Full       backendwitness.Witness
	Public     backendwitness.Witness
	Inputs     PublicInputs
	Assignment frontend.Circuit
}
