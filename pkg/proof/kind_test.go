package proof

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/healthproof/pkg/profile"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, err := ParseKind("Age")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDescriptorTable(t *testing.T) {
	vec := []struct {
		kind        Kind
		name        string
		constraints int
		proving     time.Duration
	}{
		{KindVaccination, "health_vaccination_v1", 1024, 1200 * time.Millisecond},
		{KindAge, "health_age_v1", 512, 800 * time.Millisecond},
		{KindHealth, "health_status_v1", 2048, 1800 * time.Millisecond},
	}
	for _, v := range vec {
		d := DescriptorFor(v.kind)
		require.Equal(t, v.name, d.Name)
		require.Equal(t, v.constraints, d.Constraints)
		require.Equal(t, v.proving, d.ProcessingTime)
		require.NotEmpty(t, d.DisplayName)
		require.NotEmpty(t, d.Inputs)
		require.Contains(t, d.Outputs, "valid")
	}
}

func TestDescriptorIsCopy(t *testing.T) {
	d := DescriptorFor(KindAge)
	d.Inputs["age"] = "changed"
	require.Equal(t, "Private input: User age", DescriptorFor(KindAge).Inputs["age"])
}

func TestRequestCarriesOnlyRelevantField(t *testing.T) {
	alice, err := profile.Lookup("alice")
	require.NoError(t, err)

	req := NewRequest(alice, KindAge)
	require.Equal(t, PrivateInputs{Age: 25}, req.Private)
	require.Equal(t, Requirements{MinimumAge: 18}, req.Public)
	require.Equal(t, "alice", req.UserID)

	req = NewRequest(alice, KindVaccination)
	require.Equal(t, PrivateInputs{Vaccinated: true}, req.Private)
	require.Equal(t, Requirements{VaccinationRequired: true, VaccineType: "COVID-19"}, req.Public)

	req = NewRequest(alice, KindHealth)
	require.Equal(t, PrivateInputs{HealthStatus: "excellent"}, req.Private)
	require.Equal(t, Requirements{MinimumStatus: "excellent"}, req.Public)

	require.NotEqual(t, NewRequest(alice, KindAge).ID, NewRequest(alice, KindAge).ID)
}

func TestFormatFee(t *testing.T) {
	vec := []struct {
		wei  *big.Int
		want string
	}{
		{nil, "0 ETH"},
		{big.NewInt(0), "0 ETH"},
		{DefaultNetworkFee, "0.001 ETH"},
		{new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18)), "3 ETH"},
		{big.NewInt(1), "0.000000000000000001 ETH"},
	}
	for _, v := range vec {
		require.Equal(t, v.want, FormatFee(v.wei))
	}
}
