package proof

import "time"

type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"

	InfrastructureOperational = "Operational"
	ProofDataPrefix           = "zkp://taceo.network/proof/"

	checkTime = 50 * time.Millisecond
)

type CircuitInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Constraints int           `json:"constraints"`
	ProvingTime time.Duration `json:"provingTime"`
}

type NetworkInfo struct {
	InfrastructureStatus string        `json:"infrastructureStatus"`
	ProcessingTime       time.Duration `json:"processingTime"`
	NetworkFee           string        `json:"networkFee"`
}

type Check struct {
	Status           Status        `json:"status"`
	VerificationTime time.Duration `json:"verificationTime"`
}

// Result is the outcome of one generation attempt. Validity lives in
// Verification.Status; an invalid result is not an error.
type Result struct {
	Kind            Kind        `json:"kind"`
	ProofID         string      `json:"proofId"`
	ProofData       string      `json:"proofData"`
	VerificationKey string      `json:"verificationKey"`
	Circuit         CircuitInfo `json:"circuitInfo"`
	Network         NetworkInfo `json:"networkInfo"`
	Verification    Check       `json:"verification"`
	CreatedAt       time.Time   `json:"createdAt"`
}

func (r Result) Valid() bool { return r.Verification.Status == StatusValid }

// CircuitInfoFor snapshots the descriptor of k.
func CircuitInfoFor(k Kind) CircuitInfo {
	d := DescriptorFor(k)
	return CircuitInfo{
		Name:        d.Name,
		Description: d.Description,
		Constraints: d.Constraints,
		ProvingTime: d.ProcessingTime,
	}
}
