// Package qr turns a proof into the TACEO_PROOF text payload and its QR image.
package qr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourorg/healthproof/pkg/proof"
)

const (
	Namespace = "TACEO_PROOF"
	delimiter = ":"
)

var ErrMalformedText = errors.New("malformed qr text")

// Payload is built per request and never cached. Timestamp is in unix
// milliseconds.
type Payload struct {
	ProofID         string            `json:"proofId"`
	VerificationKey string            `json:"verificationKey"`
	ProofData       string            `json:"proofData"`
	Timestamp       int64             `json:"timestamp"`
	Network         proof.NetworkInfo `json:"networkInfo"`
}

// EncodeText returns NAMESPACE:proofId:verificationKey:timestamp, the exact
// string handed to the barcode renderer.
func EncodeText(p Payload) string {
	return strings.Join([]string{
		Namespace,
		p.ProofID,
		p.VerificationKey,
		strconv.FormatInt(p.Timestamp, 10),
	}, delimiter)
}

// ParseText recovers the id, key and timestamp from a scanned payload.
// ProofData and Network are not part of the text and stay zero.
func ParseText(text string) (Payload, error) {
	parts := strings.Split(text, delimiter)
	if len(parts) != 4 {
		return Payload{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedText, len(parts))
	}
	if parts[0] != Namespace {
		return Payload{}, fmt.Errorf("%w: namespace %q", ErrMalformedText, parts[0])
	}
	if parts[1] == "" || parts[2] == "" {
		return Payload{}, fmt.Errorf("%w: empty proof id or verification key", ErrMalformedText)
	}
	ts, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: timestamp: %v", ErrMalformedText, err)
	}
	return Payload{ProofID: parts[1], VerificationKey: parts[2], Timestamp: ts}, nil
}

func (p Payload) validate() error {
	if strings.Contains(p.ProofID, delimiter) || strings.Contains(p.VerificationKey, delimiter) {
		return fmt.Errorf("field contains reserved %q", delimiter)
	}
	return nil
}
