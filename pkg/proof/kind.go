package proof

import (
	"errors"
	"fmt"
)

// Kind selects the credential claim a proof is generated for.
type Kind string

const (
	KindVaccination Kind = "vaccination"
	KindAge         Kind = "age"
	KindHealth      Kind = "health"
)

var ErrUnknownKind = errors.New("unknown proof kind")

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindVaccination, KindAge, KindHealth}
}

// ParseKind is the input boundary for user supplied kind names.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string { return string(k) }

// mustKnow panics on a kind outside the enum; callers inside the
// pipeline never construct one.
func (k Kind) mustKnow() {
	switch k {
	case KindVaccination, KindAge, KindHealth:
	default:
		panic(fmt.Sprintf("proof: %v", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))))
	}
}
