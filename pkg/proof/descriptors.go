package proof

import "time"

// Descriptor is the static metadata of the constraint system behind a kind.
// Constraint counts and processing times are display values only.
type Descriptor struct {
	Kind           Kind
	Name           string
	DisplayName    string
	Description    string
	Constraints    int
	ProcessingTime time.Duration
	Inputs         map[string]string
	Outputs        map[string]string
}

var descriptors = map[Kind]Descriptor{
	KindVaccination: {
		Kind:           KindVaccination,
		Name:           "health_vaccination_v1",
		DisplayName:    "Vaccination Status",
		Description:    "Vaccination status verification using CoSNARK",
		Constraints:    1024,
		ProcessingTime: 1200 * time.Millisecond,
		Inputs: map[string]string{
			"vaccinated": "Private input: User vaccination status",
			"required":   "Public input: Vaccination requirement",
		},
		Outputs: map[string]string{
			"valid": "Public output: Whether user meets vaccination requirements",
		},
	},
	KindAge: {
		Kind:           KindAge,
		Name:           "health_age_v1",
		DisplayName:    "Age Verification",
		Description:    "Age requirement verification using CoSNARK",
		Constraints:    512,
		ProcessingTime: 800 * time.Millisecond,
		Inputs: map[string]string{
			"age":        "Private input: User age",
			"minimumAge": "Public input: Minimum age requirement",
		},
		Outputs: map[string]string{
			"valid": "Public output: Whether user meets age requirements",
		},
	},
	KindHealth: {
		Kind:           KindHealth,
		Name:           "health_status_v1",
		DisplayName:    "Health Requirements",
		Description:    "Health status verification using CoSNARK",
		Constraints:    2048,
		ProcessingTime: 1800 * time.Millisecond,
		Inputs: map[string]string{
			"healthScore":  "Private input: User health score",
			"minimumScore": "Public input: Minimum health score requirement",
		},
		Outputs: map[string]string{
			"valid": "Public output: Whether user meets health requirements",
		},
	},
}

// DescriptorFor returns a copy of the descriptor for k. It panics on a kind
// outside the enum.
func DescriptorFor(k Kind) Descriptor {
	k.mustKnow()
	d := descriptors[k]
	d.Inputs = cloneMap(d.Inputs)
	d.Outputs = cloneMap(d.Outputs)
	return d
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
