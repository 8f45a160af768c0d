// Package profile holds the synthetic users the demo generates proofs for.
package profile

import (
	"errors"
	"fmt"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Profile is a synthetic identity record. Zero values are the failing
// defaults: age 0, not vaccinated, no health status.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Age          int    `json:"age"`
	Vaccinated   bool   `json:"vaccinated"`
	HealthStatus string `json:"healthStatus"`
}

var catalog = []Profile{
	{
		ID:           "alice",
		Name:         "Alice",
		Description:  "Fully vaccinated, excellent health",
		Age:          25,
		Vaccinated:   true,
		HealthStatus: "excellent",
	},
	{
		ID:           "bob",
		Name:         "Bob",
		Description:  "Partially vaccinated, minor health issues",
		Age:          17,
		Vaccinated:   false,
		HealthStatus: "good",
	},
	{
		ID:           "carol",
		Name:         "Carol",
		Description:  "Fully vaccinated, excellent health",
		Age:          45,
		Vaccinated:   true,
		HealthStatus: "excellent",
	},
}

// Catalog returns every demo profile in display order.
func Catalog() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id string) (Profile, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, id)
}
