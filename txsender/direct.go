package txsender

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/signer"
	"github.com/orbitbridge/depositkit/types"
)

const baseFeeMultiplier = 2

// DirectSender builds EIP-1559 transactions, signs them with the wallet key and waits for the receipt
type DirectSender struct {
	logger  *log.Logger
	client  types.EthClienter
	signer  signer.Signer
	cfg     Config
	chainID *big.Int
}

func NewDirectSender(logger *log.Logger, client types.EthClienter, s signer.Signer, cfg Config) *DirectSender {
	return &DirectSender{
		logger: logger,
		client: client,
		signer: s,
		cfg:    cfg,
	}
}

func (d *DirectSender) From() common.Address {
	return d.signer.PublicAddress()
}

// Send signs and broadcasts req and blocks until it is mined. A reverted transaction returns
// its receipt together with ErrTxReverted.
func (d *DirectSender) Send(ctx context.Context, req TxRequest) (*ethtypes.Receipt, error) {
	tx, err := d.buildTx(ctx, req)
	if err != nil {
		return nil, err
	}
	chainID, err := d.getChainID(ctx)
	if err != nil {
		return nil, err
	}
	signedTx, err := signer.SignTx(ctx, d.signer, chainID, tx)
	if err != nil {
		return nil, err
	}
	if err := d.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("sending tx %s: %w", signedTx.Hash().Hex(), err)
	}
	d.logger.Infof("tx %s sent (nonce %d, gas %d), waiting to be mined", signedTx.Hash().Hex(), signedTx.Nonce(), signedTx.Gas())

	waitCtx := ctx
	if d.cfg.WaitTxToBeMinedTimeout.Duration > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, d.cfg.WaitTxToBeMinedTimeout.Duration)
		defer cancel()
	}
	receipt, err := bind.WaitMined(waitCtx, d.client, signedTx)
	if err != nil {
		return nil, fmt.Errorf("waiting tx %s to be mined: %w", signedTx.Hash().Hex(), err)
	}
	return checkReceipt(receipt)
}

func (d *DirectSender) getChainID(ctx context.Context) (*big.Int, error) {
	if d.chainID != nil {
		return d.chainID, nil
	}
	chainID, err := d.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting chainID: %w", err)
	}
	d.chainID = chainID
	return chainID, nil
}

func (d *DirectSender) buildTx(ctx context.Context, req TxRequest) (*ethtypes.Transaction, error) {
	from := d.From()
	nonce, err := d.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("getting nonce of %s: %w", from.Hex(), err)
	}
	estimated, err := d.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    req.To,
		Value: req.value(),
		Data:  req.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimating gas of tx %s: %w", req.String(), err)
	}
	gas := d.gasLimit(estimated)

	header, err := d.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("getting latest header: %w", err)
	}
	if header.BaseFee == nil {
		gasPrice, err := d.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggesting gas price: %w", err)
		}
		return ethtypes.NewTx(&ethtypes.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       req.To,
			Value:    req.value(),
			Data:     req.Data,
		}), nil
	}
	tip, err := d.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggesting gas tip cap: %w", err)
	}
	feeCap := new(big.Int).Mul(header.BaseFee, big.NewInt(baseFeeMultiplier))
	feeCap.Add(feeCap, tip)
	chainID, err := d.getChainID(ctx)
	if err != nil {
		return nil, err
	}
	return ethtypes.NewTx(&ethtypes.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        req.To,
		Value:     req.value(),
		Data:      req.Data,
	}), nil
}

func (d *DirectSender) gasLimit(estimated uint64) uint64 {
	gas := estimated
	if d.cfg.GasLimitMultiplier > 1 {
		gas = uint64(float64(estimated) * d.cfg.GasLimitMultiplier)
	}
	return gas + d.cfg.GasOffset
}
