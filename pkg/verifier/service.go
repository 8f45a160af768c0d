// Package verifier simulates the confirmation step for a generated proof.
//
// The reference behaviour accepts any well-formed (proof id, verification
// key) pair. WithStrictPairing additionally requires the key to be the one
// derived from the id.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourorg/healthproof/internal/latency"
	"github.com/yourorg/healthproof/pkg/proof"
)

const DefaultLatency = 1000 * time.Millisecond

type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	StatusFailed  Status = "FAILED"

	SystemOperational = "OPERATIONAL"
	SystemError       = "ERROR"
)

var ErrMalformedPair = errors.New("malformed proof id / verification key pair")

type Details struct {
	ProofID            string `json:"proofId"`
	VerificationKey    string `json:"verificationKey"`
	VerificationStatus Status `json:"verificationStatus"`
	SystemStatus       string `json:"systemStatus"`
}

// Result reports one verification attempt. Success means the service ran;
// Verified is the verdict.
type Result struct {
	Success          bool          `json:"success"`
	Verified         bool          `json:"verified"`
	VerificationTime time.Duration `json:"verificationTime"`
	Message          string        `json:"message"`
	Details          Details       `json:"details"`
}

type Service struct {
	latency time.Duration
	strict  bool
	now     func() time.Time
	log     zerolog.Logger
}

type Option func(*Service)

func WithLatency(d time.Duration) Option { return func(s *Service) { s.latency = d } }

func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithStrictPairing rejects pairs whose key was not derived from the id.
func WithStrictPairing() Option { return func(s *Service) { s.strict = true } }

func New(opts ...Option) *Service {
	s := &Service{latency: DefaultLatency, now: time.Now, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) VerifyProof(ctx context.Context, proofID, verificationKey string) (res Result) {
	log := s.log.With().Str("proof_id", proofID).Logger()

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			log.Error().Err(err).Msg("proof.verify.fault")
			res = failed(proofID, verificationKey, err)
		}
	}()

	if err := checkPair(proofID, verificationKey); err != nil {
		log.Warn().Err(err).Msg("proof.verify.malformed")
		return failed(proofID, verificationKey, err)
	}

	start := s.now()
	if err := latency.Wait(ctx, s.latency); err != nil {
		log.Warn().Err(err).Msg("proof.verify.aborted")
		return failed(proofID, verificationKey, err)
	}
	elapsed := s.now().Sub(start)

	if s.strict && !proof.KeyMatches(proofID, verificationKey) {
		log.Info().Int64("latency_ms", elapsed.Milliseconds()).Msg("proof.verify.mismatched_pair")
		return Result{
			Success:          true,
			VerificationTime: elapsed,
			Message:          "Proof verification failed: verification key does not belong to proof",
			Details: Details{
				ProofID:            proofID,
				VerificationKey:    verificationKey,
				VerificationStatus: StatusInvalid,
				SystemStatus:       SystemOperational,
			},
		}
	}

	log.Info().Int64("latency_ms", elapsed.Milliseconds()).Msg("proof.verify.ok")
	return Result{
		Success:          true,
		Verified:         true,
		VerificationTime: elapsed,
		Message:          "Proof verified successfully through TACEO verification system",
		Details: Details{
			ProofID:            proofID,
			VerificationKey:    verificationKey,
			VerificationStatus: StatusValid,
			SystemStatus:       SystemOperational,
		},
	}
}

// checkPair rejects empty tokens and tokens that would break the QR text
// encoding.
func checkPair(proofID, key string) error {
	switch {
	case proofID == "":
		return fmt.Errorf("%w: empty proof id", ErrMalformedPair)
	case key == "":
		return fmt.Errorf("%w: empty verification key", ErrMalformedPair)
	case strings.Contains(proofID, ":") || strings.Contains(key, ":"):
		return fmt.Errorf("%w: ':' is reserved", ErrMalformedPair)
	}
	return nil
}

func failed(proofID, key string, err error) Result {
	return Result{
		Message: fmt.Sprintf("Proof verification failed: %v", err),
		Details: Details{
			ProofID:            proofID,
			VerificationKey:    key,
			VerificationStatus: StatusFailed,
			SystemStatus:       SystemError,
		},
	}
}
