package common

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ZeroAddress = common.Address{}

	// MaxUint256 is the allowance used when no explicit approval amount is given
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1) //nolint:mnd
)

const percentBase = 100

// IsZeroAddress returns true when addr is the zero address
func IsZeroAddress(addr common.Address) bool {
	return addr == ZeroAddress
}

// PercentIncrease returns num increased by increase percent (num + num*increase/100).
// The input is not modified.
func PercentIncrease(num *big.Int, increase uint64) *big.Int {
	if num == nil {
		return new(big.Int)
	}
	inc := new(big.Int).Mul(num, new(big.Int).SetUint64(increase))
	inc.Div(inc, big.NewInt(percentBase))
	return inc.Add(inc, num)
}

// MaxBig returns the largest of a and b. nil values are ignored.
func MaxBig(a, b *big.Int) *big.Int {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Cmp(b) >= 0:
		return a
	default:
		return b
	}
}
