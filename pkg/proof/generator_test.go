package proof

import (
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/healthproof/pkg/profile"
)

func TestAgeBoundary(t *testing.T) {
	g := NewGenerator()

	vec := []struct {
		age  int
		want bool
	}{
		{0, false}, {17, false}, {18, true}, {19, true}, {45, true},
	}
	for _, v := range vec {
		res := g.Generate(profile.Profile{ID: "x", Age: v.age}, KindAge)
		require.Equal(t, v.want, res.Valid(), "age %d", v.age)
	}
}

func TestVaccinationFollowsFlag(t *testing.T) {
	g := NewGenerator()
	for _, vaccinated := range []bool{true, false} {
		res := g.Generate(profile.Profile{ID: "x", Vaccinated: vaccinated}, KindVaccination)
		require.Equal(t, vaccinated, res.Valid())
	}
}

func TestHealthExactMatch(t *testing.T) {
	g := NewGenerator()

	vec := map[string]bool{
		"excellent":  true,
		"good":       false,
		"Excellent":  false,
		"excellent ": false,
		"":           false,
	}
	for status, want := range vec {
		res := g.Generate(profile.Profile{ID: "x", HealthStatus: status}, KindHealth)
		require.Equal(t, want, res.Valid(), "status %q", status)
	}
}

func TestCatalogOutcomes(t *testing.T) {
	g := NewGenerator()

	want := map[string]map[Kind]bool{
		"alice": {KindVaccination: true, KindAge: true, KindHealth: true},
		"bob":   {KindVaccination: false, KindAge: false, KindHealth: false},
		"carol": {KindVaccination: true, KindAge: true, KindHealth: true},
	}
	for _, p := range profile.Catalog() {
		for _, k := range Kinds() {
			require.Equal(t, want[p.ID][k], g.Generate(p, k).Valid(), "%s/%s", p.ID, k)
		}
	}
}

func TestResultShape(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)
	g := NewGenerator(WithClock(func() time.Time { return at }))

	res := g.Generate(profile.Profile{ID: "alice", Age: 25}, KindAge)

	require.True(t, strings.HasPrefix(res.ProofID, ProofIDPrefix))
	require.Equal(t, ProofDataPrefix+res.ProofID, res.ProofData)
	require.Equal(t, DeriveKey(res.ProofID), res.VerificationKey)
	require.Equal(t, "health_age_v1", res.Circuit.Name)
	require.Equal(t, 512, res.Circuit.Constraints)
	require.Equal(t, 800*time.Millisecond, res.Circuit.ProvingTime)
	require.Equal(t, NetworkInfo{
		InfrastructureStatus: "Operational",
		ProcessingTime:       800 * time.Millisecond,
		NetworkFee:           "0.001 ETH",
	}, res.Network)
	require.Equal(t, 50*time.Millisecond, res.Verification.VerificationTime)
	require.Equal(t, at, res.CreatedAt)
}

func TestNetworkFeeOption(t *testing.T) {
	g := NewGenerator(WithNetworkFee(big.NewInt(25e14)))
	res := g.Generate(profile.Profile{Vaccinated: true}, KindVaccination)
	require.Equal(t, "0.0025 ETH", res.Network.NetworkFee)
}

func TestIDsUniqueUnderFrozenClock(t *testing.T) {
	frozen := time.Unix(1000, 0)
	ids := NewIDSource(func() time.Time { return frozen }, nil)
	g := NewGenerator(WithIDSource(ids))

	const workers, perWorker = 8, 250
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.Generate(profile.Profile{Age: 30}, KindAge).ProofID
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Len(t, seen, workers*perWorker)
}

func TestIDFormat(t *testing.T) {
	ids := NewIDSource(func() time.Time { return time.Unix(0, 42) }, nil)
	id := ids.NewProofID()

	parts := strings.Split(strings.TrimPrefix(id, ProofIDPrefix), "_")
	require.Len(t, parts, 2)
	require.Equal(t, "42", parts[0])
	require.Len(t, parts[1], 9)
	for _, c := range parts[1] {
		require.Contains(t, alphabet, string(c))
	}
	require.NotContains(t, id, ":")
}

func TestKeyDerivation(t *testing.T) {
	g := NewGenerator()
	for _, p := range profile.Catalog() {
		for _, k := range Kinds() {
			res := g.Generate(p, k)
			require.Equal(t, DeriveKey(res.ProofID), res.VerificationKey)
			require.True(t, KeyMatches(res.ProofID, res.VerificationKey))
		}
	}
	require.Equal(t, "vk_p1", DeriveKey("p1"))
	require.False(t, KeyMatches("p1", "vk_p2"))
	require.False(t, KeyMatches("", "vk_"))
}

func TestUnknownKindPanics(t *testing.T) {
	g := NewGenerator()
	require.Panics(t, func() { g.Generate(profile.Profile{}, Kind("blood")) })
}
