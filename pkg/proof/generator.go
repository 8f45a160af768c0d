package proof

import (
	"math/big"
	"time"

	"github.com/yourorg/healthproof/pkg/profile"
)

// Generator maps a profile and a kind to a mock proof. It does no I/O.
type Generator struct {
	ids *IDSource
	now func() time.Time
	fee *big.Int
}

type Option func(*Generator)

func WithIDSource(s *IDSource) Option { return func(g *Generator) { g.ids = s } }

func WithClock(now func() time.Time) Option { return func(g *Generator) { g.now = now } }

// WithNetworkFee sets the displayed fee, in wei.
func WithNetworkFee(wei *big.Int) Option {
	return func(g *Generator) { g.fee = new(big.Int).Set(wei) }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		ids: DefaultIDSource(),
		now: time.Now,
		fee: DefaultNetworkFee,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Generator) Generate(p profile.Profile, k Kind) Result {
	return g.GenerateFor(NewRequest(p, k))
}

// GenerateFor produces a result for an already built request. A kind outside
// the enum panics.
func (g *Generator) GenerateFor(req Request) Result {
	info := CircuitInfoFor(req.Kind)
	id := g.ids.NewProofID()

	status := StatusInvalid
	if req.Satisfied() {
		status = StatusValid
	}

	return Result{
		Kind:            req.Kind,
		ProofID:         id,
		ProofData:       ProofDataPrefix + id,
		VerificationKey: DeriveKey(id),
		Circuit:         info,
		Network: NetworkInfo{
			InfrastructureStatus: InfrastructureOperational,
			ProcessingTime:       info.ProvingTime,
			NetworkFee:           FormatFee(g.fee),
		},
		Verification: Check{Status: status, VerificationTime: checkTime},
		CreatedAt:    g.now(),
	}
}
