package erc20bridger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	depositcommon "github.com/orbitbridge/depositkit/common"
)

const (
	DefaultGasLimitPercentIncrease         = 0
	DefaultMaxFeePerGasPercentIncrease     = 500
	DefaultMaxSubmissionFeePercentIncrease = 300
	// MinCustomGatewayGasLimit is the gas limit floor for tokens handled by the custom gateway
	MinCustomGatewayGasLimit = 275000
)

var ErrMissingBaseFee = errors.New("latest parent chain block has no base fee")

// GasEstimateConfig tunes the retryable ticket estimates. Percent increases are applied on top of
// the estimated values.
type GasEstimateConfig struct {
	GasLimitPercentIncrease         uint64 `mapstructure:"GasLimitPercentIncrease"`
	MinGasLimit                     uint64 `mapstructure:"MinGasLimit"`
	MaxFeePerGasPercentIncrease     uint64 `mapstructure:"MaxFeePerGasPercentIncrease"`
	MaxSubmissionFeePercentIncrease uint64 `mapstructure:"MaxSubmissionFeePercentIncrease"`
}

func DefaultGasEstimateConfig() GasEstimateConfig {
	return GasEstimateConfig{
		GasLimitPercentIncrease:         DefaultGasLimitPercentIncrease,
		MaxFeePerGasPercentIncrease:     DefaultMaxFeePerGasPercentIncrease,
		MaxSubmissionFeePercentIncrease: DefaultMaxSubmissionFeePercentIncrease,
	}
}

// RetryableGasEstimate are the values needed to fund a retryable ticket
type RetryableGasEstimate struct {
	GasLimit          *big.Int
	MaxFeePerGas      *big.Int
	MaxSubmissionCost *big.Int
	Deposit           *big.Int
}

// RetryableGasEstimator computes retryable estimates querying the parent chain Inbox and the
// child chain NodeInterface
type RetryableGasEstimator struct {
	parent ParentChainClient
	child  ChildChainClient
	inbox  common.Address
	cfg    GasEstimateConfig
}

func NewRetryableGasEstimator(
	parent ParentChainClient, child ChildChainClient, inbox common.Address, cfg GasEstimateConfig,
) *RetryableGasEstimator {
	return &RetryableGasEstimator{
		parent: parent,
		child:  child,
		inbox:  inbox,
		cfg:    cfg,
	}
}

// EstimateSubmissionFee returns the Inbox submission fee for dataLength bytes, increased by
// MaxSubmissionFeePercentIncrease
func (e *RetryableGasEstimator) EstimateSubmissionFee(
	ctx context.Context, dataLength int, parentBaseFee *big.Int,
) (*big.Int, error) {
	inbox := bind.NewBoundContract(e.inbox, inboxABI, e.parent, nil, nil)
	var out []interface{}
	err := inbox.Call(&bind.CallOpts{Context: ctx}, &out, methodCalculateRetryableSubmissionFee,
		big.NewInt(int64(dataLength)), parentBaseFee)
	if err != nil {
		return nil, fmt.Errorf("calling %s on inbox %s: %w", methodCalculateRetryableSubmissionFee, e.inbox.Hex(), err)
	}
	fee := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return depositcommon.PercentIncrease(fee, e.cfg.MaxSubmissionFeePercentIncrease), nil
}

// EstimateMaxFeePerGas returns the child chain gas price increased by MaxFeePerGasPercentIncrease
func (e *RetryableGasEstimator) EstimateMaxFeePerGas(ctx context.Context) (*big.Int, error) {
	gasPrice, err := e.child.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting child chain gas price: %w", err)
	}
	return depositcommon.PercentIncrease(gasPrice, e.cfg.MaxFeePerGasPercentIncrease), nil
}

// EstimateGasLimit estimates the L2 execution gas of the retryable through
// NodeInterface.estimateRetryableTicket. The sender is credited 1 ether plus the call value so
// the estimation never fails for lack of funds.
func (e *RetryableGasEstimator) EstimateGasLimit(ctx context.Context, r RetryableData) (*big.Int, error) {
	senderDeposit := new(big.Int).Add(big.NewInt(params.Ether), nonNil(r.L2CallValue))
	data, err := nodeInterfaceABI.Pack(methodEstimateRetryableTicket,
		r.From, senderDeposit, r.To, nonNil(r.L2CallValue),
		r.ExcessFeeRefundAddress, r.CallValueRefundAddress, []byte(r.Data))
	if err != nil {
		return nil, err
	}
	to := NodeInterfaceAddress
	gas, err := e.child.EstimateGas(ctx, ethereum.CallMsg{To: &to, Data: data})
	if err != nil {
		return nil, fmt.Errorf("estimating retryable ticket gas on child chain: %w", err)
	}
	gasLimit := depositcommon.PercentIncrease(new(big.Int).SetUint64(gas), e.cfg.GasLimitPercentIncrease)
	return depositcommon.MaxBig(gasLimit, new(big.Int).SetUint64(e.cfg.MinGasLimit)), nil
}

// EstimateAll fills every estimate of r. deposit = gasLimit*maxFeePerGas + maxSubmissionCost + l2CallValue
func (e *RetryableGasEstimator) EstimateAll(ctx context.Context, r RetryableData) (*RetryableGasEstimate, error) {
	gasLimit, err := e.EstimateGasLimit(ctx, r)
	if err != nil {
		return nil, err
	}
	header, err := e.parent.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("getting latest parent chain header: %w", err)
	}
	if header.BaseFee == nil {
		return nil, ErrMissingBaseFee
	}
	maxSubmissionCost, err := e.EstimateSubmissionFee(ctx, len(r.Data), header.BaseFee)
	if err != nil {
		return nil, err
	}
	maxFeePerGas, err := e.EstimateMaxFeePerGas(ctx)
	if err != nil {
		return nil, err
	}
	deposit := new(big.Int).Mul(gasLimit, maxFeePerGas)
	deposit.Add(deposit, maxSubmissionCost)
	deposit.Add(deposit, nonNil(r.L2CallValue))
	return &RetryableGasEstimate{
		GasLimit:          gasLimit,
		MaxFeePerGas:      maxFeePerGas,
		MaxSubmissionCost: maxSubmissionCost,
		Deposit:           deposit,
	}, nil
}
