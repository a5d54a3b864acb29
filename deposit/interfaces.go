package deposit

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/orbitbridge/depositkit/arbnetwork"
	"github.com/orbitbridge/depositkit/erc20bridger"
	"github.com/orbitbridge/depositkit/txsender"
)

// NetworkRegistry keeps the custom L2 networks
type NetworkRegistry interface {
	AddCustomNetwork(network arbnetwork.L2Network) error
	GetL2Network(chainID uint64) (*arbnetwork.L2Network, error)
}

// BridgerFactory builds the bridger of a registered network
type BridgerFactory func(network *arbnetwork.L2Network) Bridger

// Bridger is the token bridge of one L2 network
type Bridger interface {
	GetL1GatewayAddress(ctx context.Context, token common.Address) (common.Address, error)
	ApproveToken(ctx context.Context, params erc20bridger.ApproveParams) (*ethtypes.Receipt, error)
	GetDepositRequest(ctx context.Context, params erc20bridger.DepositParams) (*erc20bridger.DepositRequest, error)
}

// TokenReader reads ERC20 state on L1
type TokenReader interface {
	BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	Decimals(ctx context.Context, token common.Address) (uint8, error)
}

// TxSender signs and sends L1 transactions, waiting for the receipt
type TxSender interface {
	From() common.Address
	Send(ctx context.Context, req txsender.TxRequest) (*ethtypes.Receipt, error)
}

// Metrics records the run. A nil Metrics is allowed.
type Metrics interface {
	ObserveStep(step string, d time.Duration)
	RunFinished(err error)
	SetDepositValue(value *big.Int)
	SetGasUsed(tx string, gasUsed uint64)
}

type noopMetrics struct{}

func (noopMetrics) ObserveStep(string, time.Duration) {}
func (noopMetrics) RunFinished(error)                 {}
func (noopMetrics) SetDepositValue(*big.Int)          {}
func (noopMetrics) SetGasUsed(string, uint64)         {}
