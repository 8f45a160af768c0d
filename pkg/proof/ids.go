package proof

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	ProofIDPrefix = "taceo_proof_"
	KeyPrefix     = "vk_"

	suffixLen = 9
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// IDSource hands out proof identifiers. The embedded stamp is strictly
// increasing, so identifiers never repeat within one source even when the
// clock does not advance between calls.
type IDSource struct {
	now  func() time.Time
	rand io.Reader
	last atomic.Int64
}

func NewIDSource(now func() time.Time, r io.Reader) *IDSource {
	if now == nil {
		now = time.Now
	}
	if r == nil {
		r = rand.Reader
	}
	return &IDSource{now: now, rand: r}
}

var defaultIDs = NewIDSource(nil, nil)

// DefaultIDSource is shared by every generator that is not given its own.
func DefaultIDSource() *IDSource { return defaultIDs }

func (s *IDSource) stamp() int64 {
	for {
		last := s.last.Load()
		next := s.now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// NewProofID returns taceo_proof_<unixNanos>_<9 base36 chars>.
func (s *IDSource) NewProofID() string {
	return ProofIDPrefix + strconv.FormatInt(s.stamp(), 10) + "_" + s.suffix()
}

func (s *IDSource) suffix() string {
	var b strings.Builder
	b.Grow(suffixLen)
	radix := big.NewInt(int64(len(alphabet)))
	for i := 0; i < suffixLen; i++ {
		n, err := rand.Int(s.rand, radix)
		if err != nil {
			// a failing entropy source only weakens the suffix, the stamp
			// still keeps identifiers unique
			b.WriteByte('0')
			continue
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String()
}

// DeriveKey is the fixed transform from a proof id to its verification key.
func DeriveKey(proofID string) string { return KeyPrefix + proofID }

// KeyMatches reports whether key was derived from proofID.
func KeyMatches(proofID, key string) bool {
	return proofID != "" && key == DeriveKey(proofID)
}
