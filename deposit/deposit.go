package deposit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/orbitbridge/depositkit/arbnetwork"
	depositcommon "github.com/orbitbridge/depositkit/common"
	"github.com/orbitbridge/depositkit/erc20bridger"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/router"
	"github.com/orbitbridge/depositkit/txsender"
)

// Step names a stage of the deposit flow
type Step string

const (
	StepRegisterNetwork Step = "register_network"
	StepValidate        Step = "validate"
	StepResolveGateway  Step = "resolve_gateway"
	StepGatewayBalance  Step = "gateway_balance"
	StepAllowance       Step = "allowance"
	StepApprove         Step = "approve"
	StepDepositRequest  Step = "deposit_request"
	StepEncode          Step = "encode"
	StepDeposit         Step = "deposit"
)

// Depositor moves an ERC20 amount from L1 to a custom Orbit L2 through the gateway router
type Depositor struct {
	logger     *log.Logger
	cfg        Config
	network    arbnetwork.L2Network
	registry   NetworkRegistry
	newBridger BridgerFactory
	tokens     TokenReader
	sender     TxSender
	metrics    Metrics
}

func New(
	logger *log.Logger,
	cfg Config,
	network arbnetwork.L2Network,
	registry NetworkRegistry,
	newBridger BridgerFactory,
	tokens TokenReader,
	sender TxSender,
	metrics Metrics,
) *Depositor {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Depositor{
		logger:     logger,
		cfg:        cfg,
		network:    network,
		registry:   registry,
		newBridger: newBridger,
		tokens:     tokens,
		sender:     sender,
		metrics:    metrics,
	}
}

// session is the state shared by the steps of one run
type session struct {
	network    *arbnetwork.L2Network
	bridger    Bridger
	routerAddr common.Address
	gateway    common.Address
	wallet     common.Address
}

// Run executes the deposit: register the network, resolve the gateway, approve it, compute the
// retryable parameters and send outboundTransferCustomRefund to the router. The first failing
// step stops the run.
func (d *Depositor) Run(ctx context.Context) (receipt *ethtypes.Receipt, err error) {
	defer func() { d.metrics.RunFinished(err) }()

	s, err := d.prepare(ctx)
	if err != nil {
		return nil, err
	}

	err = d.step(StepApprove, func() error {
		d.logger.Info("Approving:")
		approveReceipt, err := s.bridger.ApproveToken(ctx, erc20bridger.ApproveParams{
			Token:  d.cfg.TokenAddr,
			Amount: d.cfg.approveAmount(),
		})
		if err != nil {
			return err
		}
		d.metrics.SetGasUsed(string(StepApprove), approveReceipt.GasUsed)
		d.logger.Infof("You successfully allowed the Arbitrum Bridge to spend token %s, tx: %s",
			d.cfg.TokenAddr.Hex(), approveReceipt.TxHash.Hex())
		return nil
	})
	if err != nil {
		return nil, err
	}

	req, err := d.depositRequest(ctx, s)
	if err != nil {
		return nil, err
	}

	var calldata []byte
	err = d.step(StepEncode, func() error {
		calldata, err = d.encodeDeposit(s, req.RetryableData)
		if err != nil {
			return err
		}
		transfer, err := router.DecodeOutboundTransferCustomRefund(calldata)
		if err != nil {
			return err
		}
		d.logger.Debugf("outboundTransferCustomRefund: %s", transfer.String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = d.step(StepDeposit, func() error {
		d.logger.Info("Transferring token to L2:")
		routerAddr := s.routerAddr
		receipt, err = d.sender.Send(ctx, txsender.TxRequest{
			To:    &routerAddr,
			Value: req.RetryableData.Deposit,
			Data:  calldata,
		})
		if err != nil {
			return err
		}
		d.metrics.SetDepositValue(req.RetryableData.Deposit)
		d.metrics.SetGasUsed(string(StepDeposit), receipt.GasUsed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.logReceipt(receipt)
	return receipt, nil
}

// Estimate runs the read only part of the flow and returns the deposit request that Run would
// send. The gateway must already have enough allowance.
func (d *Depositor) Estimate(ctx context.Context) (req *erc20bridger.DepositRequest, err error) {
	defer func() { d.metrics.RunFinished(err) }()

	s, err := d.prepare(ctx)
	if err != nil {
		return nil, err
	}
	err = d.step(StepAllowance, func() error {
		allowance, err := d.tokens.Allowance(ctx, d.cfg.TokenAddr, s.wallet, s.gateway)
		if err != nil {
			return err
		}
		if allowance.Cmp(d.cfg.amount()) < 0 {
			return fmt.Errorf("%w: allowance %s, amount %s", ErrInsufficientAllowance, allowance, d.cfg.amount())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	req, err = d.depositRequest(ctx, s)
	if err != nil {
		return nil, err
	}
	d.logger.Infof("deposit request: to %s, value %s, retryable: %s",
		req.TxRequest.To.Hex(), req.TxRequest.Value, req.RetryableData.String())
	return req, nil
}

// prepare runs the steps shared by Run and Estimate, up to the gateway balance log
func (d *Depositor) prepare(ctx context.Context) (*session, error) {
	s := &session{}
	err := d.step(StepRegisterNetwork, func() error {
		if err := d.registry.AddCustomNetwork(d.network); err != nil {
			return err
		}
		network, err := d.registry.GetL2Network(d.network.ChainID)
		if err != nil {
			return err
		}
		d.logger.Infof("Custom Network Added: %s", network.String())
		s.network = network
		s.bridger = d.newBridger(network)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = d.step(StepValidate, func() error {
		if depositcommon.IsZeroAddress(d.cfg.TokenAddr) {
			return ErrInvalidTokenAddress
		}
		d.logger.Infof("L1 ERC20 Address Validated: %s", d.cfg.TokenAddr.Hex())
		s.routerAddr = d.resolveRouter(s.network)
		if s.routerAddr != s.network.TokenBridge.L1GatewayRouter {
			if d.cfg.RequireRouterMatch {
				return fmt.Errorf("%w: router %s, network %s", ErrRouterMismatch,
					s.routerAddr.Hex(), s.network.TokenBridge.L1GatewayRouter.Hex())
			}
			d.logger.Warnf("deposit router %s differs from the network L1 gateway router %s",
				s.routerAddr.Hex(), s.network.TokenBridge.L1GatewayRouter.Hex())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = d.step(StepResolveGateway, func() error {
		gateway, err := s.bridger.GetL1GatewayAddress(ctx, d.cfg.TokenAddr)
		if err != nil {
			return err
		}
		d.logger.Infof("Expected L1 Gateway Address Retrieved: %s", gateway.Hex())
		if depositcommon.IsZeroAddress(gateway) {
			return ErrGatewayNotFound
		}
		s.gateway = gateway
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = d.step(StepGatewayBalance, func() error {
		balance, err := d.tokens.BalanceOf(ctx, d.cfg.TokenAddr, s.gateway)
		if err != nil {
			return err
		}
		decimals, err := d.tokens.Decimals(ctx, d.cfg.TokenAddr)
		if err != nil {
			d.logger.Warnf("unable to read token decimals: %v", err)
			d.logger.Infof("Initial Bridge Token Balance: %s", balance.String())
			return nil
		}
		d.logger.Infof("Initial Bridge Token Balance: %s (decimals %d)", balance.String(), decimals)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.wallet = d.sender.From()
	return s, nil
}

func (d *Depositor) depositRequest(ctx context.Context, s *session) (*erc20bridger.DepositRequest, error) {
	var req *erc20bridger.DepositRequest
	err := d.step(StepDepositRequest, func() error {
		var err error
		req, err = s.bridger.GetDepositRequest(ctx, erc20bridger.DepositParams{
			Token:                  d.cfg.TokenAddr,
			Amount:                 d.cfg.amount(),
			From:                   s.wallet,
			To:                     d.recipient(s.wallet),
			ExcessFeeRefundAddress: d.refundTo(s.wallet),
		})
		if err != nil {
			return err
		}
		rd := req.RetryableData
		if rd.GasLimit == nil || rd.MaxFeePerGas == nil || rd.MaxSubmissionCost == nil || rd.Deposit == nil {
			return errors.New("incomplete retryable data in deposit request")
		}
		d.logger.Infof("deposit parameters: gasLimit %s, maxFeePerGas %s, maxSubmissionCost %s, deposit %s",
			rd.GasLimit, rd.MaxFeePerGas, rd.MaxSubmissionCost, rd.Deposit)
		return nil
	})
	return req, err
}

// encodeDeposit builds outboundTransferCustomRefund with data = abi.encode(maxSubmissionCost, "0x")
func (d *Depositor) encodeDeposit(s *session, rd erc20bridger.RetryableData) ([]byte, error) {
	submission, err := router.EncodeSubmissionData(rd.MaxSubmissionCost, []byte{})
	if err != nil {
		return nil, err
	}
	return router.PackOutboundTransferCustomRefund(router.OutboundTransfer{
		Token:       d.cfg.TokenAddr,
		RefundTo:    d.refundTo(s.wallet),
		To:          d.recipient(s.wallet),
		Amount:      d.cfg.amount(),
		MaxGas:      rd.GasLimit,
		GasPriceBid: rd.MaxFeePerGas,
		Data:        submission,
	})
}

// step times fn and wraps its error with the step and its kind
func (d *Depositor) step(step Step, fn func() error) error {
	start := time.Now()
	err := fn()
	d.metrics.ObserveStep(string(step), time.Since(start))
	if err != nil {
		return newError(step, err)
	}
	return nil
}

func (d *Depositor) resolveRouter(network *arbnetwork.L2Network) common.Address {
	if depositcommon.IsZeroAddress(d.cfg.RouterAddr) {
		return network.TokenBridge.L1GatewayRouter
	}
	return d.cfg.RouterAddr
}

func (d *Depositor) recipient(wallet common.Address) common.Address {
	if depositcommon.IsZeroAddress(d.cfg.To) {
		return wallet
	}
	return d.cfg.To
}

func (d *Depositor) refundTo(wallet common.Address) common.Address {
	if depositcommon.IsZeroAddress(d.cfg.RefundTo) {
		return wallet
	}
	return d.cfg.RefundTo
}

func (d *Depositor) logReceipt(receipt *ethtypes.Receipt) {
	data, err := receipt.MarshalJSON()
	if err != nil {
		d.logger.Warnf("cannot marshal deposit receipt %s: %v", receipt.TxHash.Hex(), err)
		return
	}
	d.logger.Infof("deposit receipt: %s", string(data))
}
