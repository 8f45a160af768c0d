package proof

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// DefaultNetworkFee is 0.001 ether, in wei.
var DefaultNetworkFee = big.NewInt(params.Ether / 1000)

// FormatFee renders a wei amount as an ether string, e.g. "0.001 ETH".
func FormatFee(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0 ETH"
	}
	r := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether))
	s := r.FloatString(18)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + " ETH"
}
