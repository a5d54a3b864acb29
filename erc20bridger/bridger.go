package erc20bridger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/orbitbridge/depositkit/arbnetwork"
	depositcommon "github.com/orbitbridge/depositkit/common"
	"github.com/orbitbridge/depositkit/erc20"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/router"
	"github.com/orbitbridge/depositkit/txsender"
)

// ParentChainClient is the L1 surface used by the bridger
type ParentChainClient interface {
	bind.ContractCaller
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error)
}

// ChildChainClient is the L2 surface used to estimate retryables
type ChildChainClient interface {
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// TxSender sends L1 transactions on behalf of the wallet
type TxSender interface {
	From() common.Address
	Send(ctx context.Context, req txsender.TxRequest) (*ethtypes.Receipt, error)
}

type ApproveParams struct {
	Token common.Address
	// Amount to approve, nil means unlimited (MaxUint256)
	Amount *big.Int
}

type DepositParams struct {
	Token  common.Address
	Amount *big.Int
	// From is the depositor, defaults to the sender address
	From common.Address
	// To is the L2 recipient, defaults to From
	To common.Address
	// ExcessFeeRefundAddress receives the unused L2 fees, defaults to From
	ExcessFeeRefundAddress common.Address
	// GasOverrides replaces the bridger gas estimation config when set
	GasOverrides *GasEstimateConfig
}

// DepositRequest is a ready to send deposit transaction plus the retryable it creates
type DepositRequest struct {
	TxRequest     txsender.TxRequest
	From          common.Address
	RetryableData RetryableData
}

// Bridger resolves gateways, approves tokens and computes deposit requests for one L2 network
type Bridger struct {
	logger  *log.Logger
	network arbnetwork.L2Network
	parent  ParentChainClient
	child   ChildChainClient
	sender  TxSender
	router  *router.GatewayRouter
	gasCfg  GasEstimateConfig
}

func NewBridger(
	logger *log.Logger,
	network arbnetwork.L2Network,
	parent ParentChainClient,
	child ChildChainClient,
	sender TxSender,
	gasCfg GasEstimateConfig,
) *Bridger {
	return &Bridger{
		logger:  logger,
		network: network,
		parent:  parent,
		child:   child,
		sender:  sender,
		router:  router.NewGatewayRouter(network.TokenBridge.L1GatewayRouter, parent),
		gasCfg:  gasCfg,
	}
}

// GetL1GatewayAddress returns the L1 gateway the router assigns to token
func (b *Bridger) GetL1GatewayAddress(ctx context.Context, token common.Address) (common.Address, error) {
	return b.router.GetGateway(ctx, token)
}

// ApproveToken lets the token gateway spend the wallet tokens and waits for the receipt
func (b *Bridger) ApproveToken(ctx context.Context, p ApproveParams) (*ethtypes.Receipt, error) {
	gateway, err := b.GetL1GatewayAddress(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	amount := p.Amount
	if amount == nil {
		amount = depositcommon.MaxUint256
	}
	data, err := erc20.PackApprove(gateway, amount)
	if err != nil {
		return nil, err
	}
	b.logger.Debugf("approving gateway %s to spend %s of token %s", gateway.Hex(), amount, p.Token.Hex())
	token := p.Token
	return b.sender.Send(ctx, txsender.TxRequest{To: &token, Value: new(big.Int), Data: data})
}

// GetDepositRequest computes the retryable estimates of a token deposit and the router
// transaction that performs it
func (b *Bridger) GetDepositRequest(ctx context.Context, p DepositParams) (*DepositRequest, error) {
	from := p.From
	if depositcommon.IsZeroAddress(from) {
		from = b.sender.From()
	}
	to := p.To
	if depositcommon.IsZeroAddress(to) {
		to = from
	}
	refundTo := p.ExcessFeeRefundAddress
	if depositcommon.IsZeroAddress(refundTo) {
		refundTo = from
	}
	gasCfg := b.gasCfg
	if p.GasOverrides != nil {
		gasCfg = *p.GasOverrides
	}

	gateway, err := b.GetL1GatewayAddress(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	if gateway == b.network.TokenBridge.L1CustomGateway && gasCfg.MinGasLimit < MinCustomGatewayGasLimit {
		gasCfg.MinGasLimit = MinCustomGatewayGasLimit
	}

	transfer := router.OutboundTransfer{
		Token:    p.Token,
		RefundTo: refundTo,
		To:       to,
		Amount:   p.Amount,
	}
	retryable, err := b.probeRetryable(ctx, from, transfer)
	if err != nil {
		return nil, err
	}
	b.logger.Debugf("deposit probe retryable: %s", retryable.String())

	estimator := NewRetryableGasEstimator(b.parent, b.child, b.network.EthBridge.Inbox, gasCfg)
	estimate, err := estimator.EstimateAll(ctx, *retryable)
	if err != nil {
		return nil, err
	}
	retryable.GasLimit = estimate.GasLimit
	retryable.MaxFeePerGas = estimate.MaxFeePerGas
	retryable.MaxSubmissionCost = estimate.MaxSubmissionCost
	retryable.Deposit = estimate.Deposit

	data, err := packDeposit(transfer, estimate.GasLimit, estimate.MaxFeePerGas, estimate.MaxSubmissionCost)
	if err != nil {
		return nil, err
	}
	routerAddr := b.router.Address()
	return &DepositRequest{
		TxRequest: txsender.TxRequest{
			To:    &routerAddr,
			Value: estimate.Deposit,
			Data:  data,
		},
		From:          from,
		RetryableData: *retryable,
	}, nil
}

// probeRetryable eth_calls the deposit with values that make the Inbox revert with
// RetryableData, which reveals the L2 side of the ticket
func (b *Bridger) probeRetryable(
	ctx context.Context, from common.Address, transfer router.OutboundTransfer,
) (*RetryableData, error) {
	data, err := packDeposit(transfer, errorTriggeringGasLimit, errorTriggeringMaxFeePerGas, errorTriggeringSubmission)
	if err != nil {
		return nil, err
	}
	value := new(big.Int).Mul(errorTriggeringGasLimit, errorTriggeringMaxFeePerGas)
	value.Add(value, errorTriggeringSubmission)
	routerAddr := b.router.Address()
	_, callErr := b.parent.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    &routerAddr,
		Value: value,
		Data:  data,
	}, nil)
	if callErr == nil {
		return nil, ErrNoRetryableData
	}
	retryable, err := ParseRetryableData(callErr)
	if err != nil {
		return nil, fmt.Errorf("deposit probe call failed: %w", callErr)
	}
	return retryable, nil
}

func packDeposit(transfer router.OutboundTransfer, gasLimit, maxFeePerGas, maxSubmissionCost *big.Int) ([]byte, error) {
	submission, err := router.EncodeSubmissionData(maxSubmissionCost, nil)
	if err != nil {
		return nil, err
	}
	transfer.MaxGas = gasLimit
	transfer.GasPriceBid = maxFeePerGas
	transfer.Data = submission
	return router.PackOutboundTransferCustomRefund(transfer)
}
