// Package prover wraps the proof generator with simulated network latency
// and the descriptive text shown next to a proof.
package prover

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourorg/healthproof/internal/latency"
	"github.com/yourorg/healthproof/pkg/profile"
	"github.com/yourorg/healthproof/pkg/proof"
)

const DefaultLatency = 1500 * time.Millisecond

// Outcome is what callers receive for every generation attempt. Proof is
// nil unless Success is set.
type Outcome struct {
	Success bool          `json:"success"`
	Proof   *proof.Result `json:"proof,omitempty"`
	Message string        `json:"message"`
	Details Details       `json:"details"`
}

type Details struct {
	PrivateDataHidden  []string          `json:"privateDataHidden"`
	PublicVerification []string          `json:"publicVerification"`
	Circuit            proof.CircuitInfo `json:"circuitInfo"`
	Network            proof.NetworkInfo `json:"networkInfo"`
	Features           []string          `json:"taceoFeatures"`
}

type Service struct {
	gen     *proof.Generator
	latency time.Duration
	log     zerolog.Logger
}

type Option func(*Service)

func WithLatency(d time.Duration) Option { return func(s *Service) { s.latency = d } }

func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

func New(gen *proof.Generator, opts ...Option) *Service {
	if gen == nil {
		gen = proof.NewGenerator()
	}
	s := &Service{gen: gen, latency: DefaultLatency, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GenerateHealthProof never fails past its boundary: requirement misses,
// cancellation and internal faults all come back as Success=false.
func (s *Service) GenerateHealthProof(ctx context.Context, p profile.Profile, k proof.Kind) (out Outcome) {
	start := time.Now()
	log := s.log.With().Str("user", p.ID).Str("kind", k.String()).Logger()

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			log.Error().Err(err).Msg("proof.generate.fault")
			out = faulted(err)
		}
	}()

	req := proof.NewRequest(p, k)
	log = log.With().Str("request_id", req.ID.String()).Logger()
	log.Debug().Dur("latency", s.latency).Msg("proof.generate.start")

	if err := latency.Wait(ctx, s.latency); err != nil {
		log.Warn().Err(err).Msg("proof.generate.aborted")
		return faulted(err)
	}

	res := s.gen.GenerateFor(req)
	if !res.Valid() {
		log.Info().
			Str("proof_id", res.ProofID).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("proof.generate.requirements_not_met")
		return rejected(k)
	}

	log.Info().
		Str("proof_id", res.ProofID).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("proof.generate.ok")

	return Outcome{
		Success: true,
		Proof:   &res,
		Message: successMessage(k),
		Details: Details{
			PrivateDataHidden:  PrivateDataHidden(),
			PublicVerification: PublicVerification(k),
			Circuit:            res.Circuit,
			Network:            res.Network,
			Features:           Features(),
		},
	}
}

// rejected keeps the circuit snapshot but reports empty claim lists: no
// proof exists for them to describe.
func rejected(k proof.Kind) Outcome {
	info := proof.CircuitInfoFor(k)
	info.ProvingTime = 0
	return Outcome{
		Message: fmt.Sprintf("Proof generation failed: %s requirements not met", category(k)),
		Details: Details{
			PrivateDataHidden:  []string{},
			PublicVerification: []string{},
			Circuit:            info,
			Network:            idleNetwork(),
			Features:           []string{},
		},
	}
}

func faulted(err error) Outcome {
	return Outcome{
		Message: fmt.Sprintf("TACEO network error: %v", err),
		Details: Details{
			PrivateDataHidden:  []string{},
			PublicVerification: []string{},
			Network:            idleNetwork(),
			Features:           []string{},
		},
	}
}

func idleNetwork() proof.NetworkInfo {
	return proof.NetworkInfo{
		InfrastructureStatus: proof.InfrastructureOperational,
		NetworkFee:           proof.FormatFee(nil),
	}
}
