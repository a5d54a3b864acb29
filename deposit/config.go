package deposit

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/orbitbridge/depositkit/config/types"
	"github.com/orbitbridge/depositkit/erc20bridger"
)

// Config is the deposit to perform
type Config struct {
	// TokenAddr is the L1 ERC20 token to deposit
	TokenAddr common.Address `mapstructure:"TokenAddr"`
	// RouterAddr receives the deposit transaction. Empty means the network L1GatewayRouter
	RouterAddr common.Address `mapstructure:"RouterAddr"`
	// Amount of tokens, in token units
	Amount types.BigInt `mapstructure:"Amount"`
	// ApproveAmount is the gateway allowance, empty means unlimited
	ApproveAmount types.BigInt `jsonschema:"omitempty" mapstructure:"ApproveAmount"`
	// RefundTo receives excess L2 fees, empty means the wallet
	RefundTo common.Address `jsonschema:"omitempty" mapstructure:"RefundTo"`
	// To is the L2 recipient, empty means the wallet
	To common.Address `jsonschema:"omitempty" mapstructure:"To"`
	// RequireRouterMatch fails the run when RouterAddr differs from the network L1GatewayRouter
	RequireRouterMatch bool `mapstructure:"RequireRouterMatch"`
	// GasEstimation tunes the retryable ticket estimates
	GasEstimation erc20bridger.GasEstimateConfig `mapstructure:"GasEstimation"`
}

func (c Config) amount() *big.Int {
	if c.Amount.Int == nil {
		return new(big.Int)
	}
	return c.Amount.Int
}

// approveAmount returns nil for an unlimited approval
func (c Config) approveAmount() *big.Int {
	if c.ApproveAmount.IsZero() {
		return nil
	}
	return c.ApproveAmount.Int
}
