package proof

import (
	"github.com/google/uuid"

	"github.com/yourorg/healthproof/pkg/profile"
)

const (
	MinimumAge          = 18
	RequiredHealth      = "excellent"
	RequiredVaccineType = "COVID-19"
)

// PrivateInputs carries only the profile field the requested kind reads.
type PrivateInputs struct {
	Vaccinated   bool   `json:"vaccinated,omitempty"`
	Age          int    `json:"age,omitempty"`
	HealthStatus string `json:"healthStatus,omitempty"`
}

type Requirements struct {
	VaccinationRequired bool   `json:"vaccinationRequired,omitempty"`
	VaccineType         string `json:"vaccineType,omitempty"`
	MinimumAge          int    `json:"minimumAge,omitempty"`
	MinimumStatus       string `json:"minimumStatus,omitempty"`
}

// Request is built per generation attempt and discarded afterwards.
type Request struct {
	ID      uuid.UUID     `json:"id"`
	UserID  string        `json:"userId"`
	Kind    Kind          `json:"kind"`
	Private PrivateInputs `json:"-"`
	Public  Requirements  `json:"public"`
}

func NewRequest(p profile.Profile, k Kind) Request {
	k.mustKnow()

	req := Request{ID: uuid.New(), UserID: p.ID, Kind: k}
	switch k {
	case KindVaccination:
		req.Private.Vaccinated = p.Vaccinated
		req.Public.VaccinationRequired = true
		req.Public.VaccineType = RequiredVaccineType
	case KindAge:
		req.Private.Age = p.Age
		req.Public.MinimumAge = MinimumAge
	case KindHealth:
		req.Private.HealthStatus = p.HealthStatus
		req.Public.MinimumStatus = RequiredHealth
	}
	return req
}

// Satisfied reports whether the private inputs meet the public requirement.
func (r Request) Satisfied() bool {
	switch r.Kind {
	case KindVaccination:
		return r.Private.Vaccinated
	case KindAge:
		return r.Private.Age >= r.Public.MinimumAge
	case KindHealth:
		return r.Public.MinimumStatus != "" && r.Private.HealthStatus == r.Public.MinimumStatus
	}
	r.Kind.mustKnow()
	return false
}
