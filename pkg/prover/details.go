package prover

import "github.com/yourorg/healthproof/pkg/proof"

func successMessage(k proof.Kind) string {
	switch k {
	case proof.KindVaccination:
		return "Vaccination proof generated successfully"
	case proof.KindAge:
		return "Age verification proof generated successfully"
	default:
		return "Health status proof generated successfully"
	}
}

func category(k proof.Kind) string {
	switch k {
	case proof.KindVaccination:
		return "Vaccination"
	case proof.KindAge:
		return "Age"
	default:
		return "Health"
	}
}

// PrivateDataHidden lists the categories a proof never discloses.
func PrivateDataHidden() []string {
	return []string{
		"Personal identification",
		"Exact dates and times",
		"Medical records",
		"Personal health data",
		"Encrypted witness data",
		"CoSNARK intermediate values",
		"MPC secret shares",
	}
}

// PublicVerification lists the claims a valid proof of kind k discloses.
func PublicVerification(k proof.Kind) []string {
	var claims []string
	switch k {
	case proof.KindVaccination:
		claims = []string{"Vaccination status: CONFIRMED", "Meets event requirements: YES"}
	case proof.KindAge:
		claims = []string{"Age requirement met: YES", "Over minimum age: CONFIRMED"}
	case proof.KindHealth:
		claims = []string{"Health status: EXCELLENT", "Meets health requirements: YES"}
	}
	return append(claims,
		"TACEO network verified: YES",
		"CoSNARK proof valid: YES",
		"MPC consensus reached: YES",
	)
}

func Features() []string {
	return []string{
		"Multi-Party Computation (MPC)",
		"Collaborative SNARK (CoSNARK)",
		"Zero-Knowledge Proofs",
		"Privacy-preserving verification",
		"Distributed proof generation",
	}
}
