package deposit

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/orbitbridge/depositkit/arbnetwork"
	"github.com/orbitbridge/depositkit/config/types"
	"github.com/orbitbridge/depositkit/deposit/mocks"
	"github.com/orbitbridge/depositkit/erc20bridger"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/router"
	"github.com/orbitbridge/depositkit/txsender"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	tokenAddr   = common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238")
	routerAddr  = common.HexToAddress("0xf446986e261E84aB2A55159F3Fba60F7E8AeDdAF")
	otherRouter = common.HexToAddress("0x91A2b3C4d5E6f708192A3b4C5d6E7f8091A2b3C4")
	gatewayAddr = common.HexToAddress("0x6E7f8091A2b3C4d5E6f708192A3b4C5d6E7f8091")
	walletAddr  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	approveHash = common.HexToHash("0xa1")
	depositHash = common.HexToHash("0xd1")
)

type testSuite struct {
	registry     *mocks.NetworkRegistry
	bridger      *mocks.Bridger
	tokens       *mocks.TokenReader
	sender       *mocks.TxSender
	metrics      *mocks.Metrics
	network      arbnetwork.L2Network
	cfg          Config
	bridgerBuilt int
}

func newTestSuite(t *testing.T) *testSuite {
	t.Helper()
	return &testSuite{
		registry: mocks.NewNetworkRegistry(t),
		bridger:  mocks.NewBridger(t),
		tokens:   mocks.NewTokenReader(t),
		sender:   mocks.NewTxSender(t),
		network: arbnetwork.L2Network{
			ChainID:        89346162,
			PartnerChainID: 11155111,
			Name:           "orbit",
			EthBridge:      arbnetwork.EthBridge{Inbox: common.HexToAddress("0x7b2f9c1D4a5E6F70819203a4B5c6D7E8F9a0B1C2")},
			TokenBridge:    arbnetwork.TokenBridge{L1GatewayRouter: routerAddr},
		},
		cfg: Config{
			TokenAddr:  tokenAddr,
			RouterAddr: routerAddr,
			Amount:     types.NewBigInt(big.NewInt(1000000)),
		},
	}
}

func (s *testSuite) depositor() *Depositor {
	factory := func(network *arbnetwork.L2Network) Bridger {
		s.bridgerBuilt++
		return s.bridger
	}
	var metrics Metrics
	if s.metrics != nil {
		metrics = s.metrics
	}
	return New(log.WithFields("test", "deposit"), s.cfg, s.network, s.registry, factory, s.tokens, s.sender, metrics)
}

func (s *testSuite) expectRegister() {
	network := s.network
	s.registry.EXPECT().AddCustomNetwork(s.network).Return(nil).Once()
	s.registry.EXPECT().GetL2Network(s.network.ChainID).Return(&network, nil).Once()
}

func (s *testSuite) expectUpToBalance() {
	s.expectRegister()
	s.bridger.EXPECT().GetL1GatewayAddress(mock.Anything, tokenAddr).Return(gatewayAddr, nil).Once()
	s.tokens.EXPECT().BalanceOf(mock.Anything, tokenAddr, gatewayAddr).Return(big.NewInt(5000000), nil).Once()
	s.tokens.EXPECT().Decimals(mock.Anything, tokenAddr).Return(uint8(6), nil).Once()
	s.sender.EXPECT().From().Return(walletAddr).Once()
}

func depositRequest() *erc20bridger.DepositRequest {
	return &erc20bridger.DepositRequest{
		TxRequest: txsender.TxRequest{To: &routerAddr, Value: big.NewInt(60_004_000)},
		From:      walletAddr,
		RetryableData: erc20bridger.RetryableData{
			From:              gatewayAddr,
			GasLimit:          big.NewInt(100000),
			MaxFeePerGas:      big.NewInt(600),
			MaxSubmissionCost: big.NewInt(4000),
			Deposit:           big.NewInt(60_004_000),
		},
	}
}

func expectedDepositParams() erc20bridger.DepositParams {
	return erc20bridger.DepositParams{
		Token:                  tokenAddr,
		Amount:                 big.NewInt(1000000),
		From:                   walletAddr,
		To:                     walletAddr,
		ExcessFeeRefundAddress: walletAddr,
	}
}

func isDepositTx(to common.Address) interface{} {
	return mock.MatchedBy(func(req txsender.TxRequest) bool {
		if req.To == nil || *req.To != to || req.Value.Cmp(big.NewInt(60_004_000)) != 0 {
			return false
		}
		transfer, err := router.DecodeOutboundTransferCustomRefund(req.Data)
		if err != nil {
			return false
		}
		cost, hook, err := router.DecodeSubmissionData(transfer.Data)
		return err == nil &&
			transfer.Token == tokenAddr &&
			transfer.RefundTo == walletAddr &&
			transfer.To == walletAddr &&
			transfer.Amount.Cmp(big.NewInt(1000000)) == 0 &&
			transfer.MaxGas.Cmp(big.NewInt(100000)) == 0 &&
			transfer.GasPriceBid.Cmp(big.NewInt(600)) == 0 &&
			cost.Cmp(big.NewInt(4000)) == 0 &&
			len(hook) == 0
	})
}

func requireStepError(t *testing.T, err error, step Step, kind Kind) {
	t.Helper()
	require.Error(t, err)
	var depErr *Error
	require.ErrorAs(t, err, &depErr)
	require.Equal(t, step, depErr.Step)
	require.Equal(t, kind, depErr.Kind)
}

func TestRunHappyPath(t *testing.T) {
	s := newTestSuite(t)
	s.expectUpToBalance()
	finalReceipt := &ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful, TxHash: depositHash, GasUsed: 210000}

	mock.InOrder(
		s.bridger.EXPECT().ApproveToken(mock.Anything, erc20bridger.ApproveParams{Token: tokenAddr}).
			Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful, TxHash: approveHash}, nil).Once(),
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, expectedDepositParams()).
			Return(depositRequest(), nil).Once(),
		s.sender.EXPECT().Send(mock.Anything, isDepositTx(routerAddr)).
			Return(finalReceipt, nil).Once(),
	)

	receipt, err := s.depositor().Run(context.Background())
	require.NoError(t, err)
	require.Same(t, finalReceipt, receipt)
	require.Equal(t, 1, s.bridgerBuilt)
}

func TestRunRecordsMetrics(t *testing.T) {
	s := newTestSuite(t)
	s.metrics = mocks.NewMetrics(t)
	s.expectUpToBalance()
	s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
		Return(&ethtypes.Receipt{TxHash: approveHash, GasUsed: 46000}, nil).Once()
	s.bridger.EXPECT().GetDepositRequest(mock.Anything, mock.Anything).Return(depositRequest(), nil).Once()
	s.sender.EXPECT().Send(mock.Anything, mock.Anything).Return(&ethtypes.Receipt{TxHash: depositHash, GasUsed: 210000}, nil).Once()

	for _, step := range []Step{StepRegisterNetwork, StepValidate, StepResolveGateway, StepGatewayBalance,
		StepApprove, StepDepositRequest, StepEncode, StepDeposit} {
		s.metrics.EXPECT().ObserveStep(string(step), mock.Anything).Return().Once()
	}
	s.metrics.EXPECT().SetGasUsed("approve", uint64(46000)).Return().Once()
	s.metrics.EXPECT().SetGasUsed("deposit", uint64(210000)).Return().Once()
	s.metrics.EXPECT().SetDepositValue(big.NewInt(60_004_000)).Return().Once()
	s.metrics.EXPECT().RunFinished(nil).Return().Once()

	_, err := s.depositor().Run(context.Background())
	require.NoError(t, err)
}

func TestRunFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("network already registered", func(t *testing.T) {
		s := newTestSuite(t)
		s.registry.EXPECT().AddCustomNetwork(s.network).
			Return(arbnetwork.ErrNetworkAlreadyRegistered).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepRegisterNetwork, KindValidation)
		require.ErrorIs(t, err, arbnetwork.ErrNetworkAlreadyRegistered)
		require.Zero(t, s.bridgerBuilt)
	})

	t.Run("zero token address", func(t *testing.T) {
		s := newTestSuite(t)
		s.cfg.TokenAddr = common.Address{}
		s.expectRegister()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepValidate, KindValidation)
		require.ErrorIs(t, err, ErrInvalidTokenAddress)
		require.True(t, IsValidation(err))
	})

	t.Run("zero gateway", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectRegister()
		s.bridger.EXPECT().GetL1GatewayAddress(mock.Anything, tokenAddr).Return(common.Address{}, nil).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepResolveGateway, KindValidation)
		require.ErrorIs(t, err, ErrGatewayNotFound)
	})

	t.Run("gateway lookup fails", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectRegister()
		s.bridger.EXPECT().GetL1GatewayAddress(mock.Anything, tokenAddr).
			Return(common.Address{}, errors.New("dial tcp: connection refused")).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepResolveGateway, KindNetwork)
		require.True(t, IsNetwork(err))
	})

	t.Run("gateway balance fails", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectRegister()
		s.bridger.EXPECT().GetL1GatewayAddress(mock.Anything, tokenAddr).Return(gatewayAddr, nil).Once()
		s.tokens.EXPECT().BalanceOf(mock.Anything, tokenAddr, gatewayAddr).Return(nil, errors.New("timeout")).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepGatewayBalance, KindNetwork)
	})

	t.Run("decimals unavailable", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectRegister()
		s.bridger.EXPECT().GetL1GatewayAddress(mock.Anything, tokenAddr).Return(gatewayAddr, nil).Once()
		s.tokens.EXPECT().BalanceOf(mock.Anything, tokenAddr, gatewayAddr).Return(big.NewInt(5000000), nil).Once()
		s.tokens.EXPECT().Decimals(mock.Anything, tokenAddr).Return(uint8(0), errors.New("execution reverted")).Once()
		s.sender.EXPECT().From().Return(walletAddr).Once()
		s.tokens.EXPECT().Allowance(mock.Anything, tokenAddr, walletAddr, gatewayAddr).Return(big.NewInt(0), nil).Once()

		_, err := s.depositor().Estimate(ctx)
		requireStepError(t, err, StepAllowance, KindValidation)
	})

	t.Run("approval rejected", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectUpToBalance()
		s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
			Return(nil, txsender.ErrTxReverted).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepApprove, KindTxRejected)
		require.True(t, IsTxRejected(err))
	})

	t.Run("deposit request fails", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectUpToBalance()
		s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
			Return(&ethtypes.Receipt{TxHash: approveHash}, nil).Once()
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, mock.Anything).
			Return(nil, erc20bridger.ErrNoRetryableData).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepDepositRequest, KindNetwork)
		require.ErrorIs(t, err, erc20bridger.ErrNoRetryableData)
	})

	t.Run("incomplete deposit request", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectUpToBalance()
		s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
			Return(&ethtypes.Receipt{TxHash: approveHash}, nil).Once()
		req := depositRequest()
		req.RetryableData.Deposit = nil
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, mock.Anything).Return(req, nil).Once()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepDepositRequest, KindNetwork)
	})

	t.Run("deposit reverted", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectUpToBalance()
		s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
			Return(&ethtypes.Receipt{TxHash: approveHash}, nil).Once()
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, mock.Anything).Return(depositRequest(), nil).Once()
		s.sender.EXPECT().Send(mock.Anything, mock.Anything).
			Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed}, txsender.ErrTxReverted).Once()

		receipt, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepDeposit, KindTxRejected)
		require.Nil(t, receipt)
	})
}

func TestRunRouter(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch is rejected when required", func(t *testing.T) {
		s := newTestSuite(t)
		s.cfg.RouterAddr = otherRouter
		s.cfg.RequireRouterMatch = true
		s.expectRegister()

		_, err := s.depositor().Run(ctx)
		requireStepError(t, err, StepValidate, KindValidation)
		require.ErrorIs(t, err, ErrRouterMismatch)
	})

	t.Run("mismatch only warns by default", func(t *testing.T) {
		s := newTestSuite(t)
		s.cfg.RouterAddr = otherRouter
		s.expectUpToBalance()
		s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
			Return(&ethtypes.Receipt{TxHash: approveHash}, nil).Once()
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, mock.Anything).Return(depositRequest(), nil).Once()
		s.sender.EXPECT().Send(mock.Anything, isDepositTx(otherRouter)).
			Return(&ethtypes.Receipt{TxHash: depositHash}, nil).Once()

		_, err := s.depositor().Run(ctx)
		require.NoError(t, err)
	})

	t.Run("empty router uses the network one", func(t *testing.T) {
		s := newTestSuite(t)
		s.cfg.RouterAddr = common.Address{}
		s.cfg.RequireRouterMatch = true
		s.expectUpToBalance()
		s.bridger.EXPECT().ApproveToken(mock.Anything, mock.Anything).
			Return(&ethtypes.Receipt{TxHash: approveHash}, nil).Once()
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, mock.Anything).Return(depositRequest(), nil).Once()
		s.sender.EXPECT().Send(mock.Anything, isDepositTx(routerAddr)).
			Return(&ethtypes.Receipt{TxHash: depositHash}, nil).Once()

		_, err := s.depositor().Run(ctx)
		require.NoError(t, err)
	})
}

func TestRunOverrides(t *testing.T) {
	s := newTestSuite(t)
	recipient := common.HexToAddress("0xE6f708192A3b4C5d6E7f8091A2b3C4d5E6f70819")
	s.cfg.To = recipient
	s.cfg.RefundTo = recipient
	s.cfg.ApproveAmount = types.NewBigInt(big.NewInt(2000000))
	s.expectUpToBalance()

	s.bridger.EXPECT().ApproveToken(mock.Anything, erc20bridger.ApproveParams{Token: tokenAddr, Amount: big.NewInt(2000000)}).
		Return(&ethtypes.Receipt{TxHash: approveHash}, nil).Once()
	params := expectedDepositParams()
	params.To = recipient
	params.ExcessFeeRefundAddress = recipient
	s.bridger.EXPECT().GetDepositRequest(mock.Anything, params).Return(depositRequest(), nil).Once()
	s.sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(req txsender.TxRequest) bool {
		transfer, err := router.DecodeOutboundTransferCustomRefund(req.Data)
		return err == nil && transfer.To == recipient && transfer.RefundTo == recipient
	})).Return(&ethtypes.Receipt{TxHash: depositHash}, nil).Once()

	_, err := s.depositor().Run(context.Background())
	require.NoError(t, err)
}

func TestEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("enough allowance", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectUpToBalance()
		s.tokens.EXPECT().Allowance(mock.Anything, tokenAddr, walletAddr, gatewayAddr).
			Return(big.NewInt(1000000), nil).Once()
		s.bridger.EXPECT().GetDepositRequest(mock.Anything, expectedDepositParams()).Return(depositRequest(), nil).Once()

		req, err := s.depositor().Estimate(ctx)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(60_004_000), req.RetryableData.Deposit)
	})

	t.Run("insufficient allowance", func(t *testing.T) {
		s := newTestSuite(t)
		s.expectUpToBalance()
		s.tokens.EXPECT().Allowance(mock.Anything, tokenAddr, walletAddr, gatewayAddr).
			Return(big.NewInt(10), nil).Once()

		_, err := s.depositor().Estimate(ctx)
		requireStepError(t, err, StepAllowance, KindValidation)
		require.ErrorIs(t, err, ErrInsufficientAllowance)
	})
}
