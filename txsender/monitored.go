package txsender

import (
	"context"
	"fmt"
	"math/big"
	"time"

	ethtxtypes "github.com/0xPolygon/zkevm-ethtx-manager/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/orbitbridge/depositkit/log"
)

const defaultWaitPeriodMonitorTx = time.Second

// EthTxManager is the subset of zkevm-ethtx-manager used to send monitored transactions
type EthTxManager interface {
	Add(ctx context.Context,
		to *common.Address,
		value *big.Int,
		data []byte,
		gasOffset uint64,
		sidecar *ethtypes.BlobTxSidecar,
	) (common.Hash, error)
	Result(ctx context.Context, id common.Hash) (ethtxtypes.MonitoredTxResult, error)
}

// ReceiptGetter fetches a receipt when the monitored result does not carry one
type ReceiptGetter interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

// MonitoredSender delegates nonce, gas pricing, signing and resubmission to zkevm-ethtx-manager
type MonitoredSender struct {
	logger              *log.Logger
	ethTxMan            EthTxManager
	client              ReceiptGetter
	from                common.Address
	gasOffset           uint64
	waitPeriodMonitorTx time.Duration
	waitTimeout         time.Duration
}

// NewMonitoredSender creates a sender on top of ethTxMan. from must be the address of the key
// configured in the ethtxmanager.
func NewMonitoredSender(
	logger *log.Logger,
	ethTxMan EthTxManager,
	client ReceiptGetter,
	from common.Address,
	cfg Config,
) *MonitoredSender {
	waitPeriod := cfg.WaitPeriodMonitorTx.Duration
	if waitPeriod <= 0 {
		waitPeriod = defaultWaitPeriodMonitorTx
	}
	return &MonitoredSender{
		logger:              logger,
		ethTxMan:            ethTxMan,
		client:              client,
		from:                from,
		gasOffset:           cfg.GasOffset,
		waitPeriodMonitorTx: waitPeriod,
		waitTimeout:         cfg.WaitTxToBeMinedTimeout.Duration,
	}
}

func (m *MonitoredSender) From() common.Address {
	return m.from
}

func (m *MonitoredSender) Send(ctx context.Context, req TxRequest) (*ethtypes.Receipt, error) {
	id, err := m.ethTxMan.Add(ctx, req.To, req.value(), req.Data, m.gasOffset, nil)
	if err != nil {
		return nil, fmt.Errorf("adding tx %s to ethtxmanager: %w", req.String(), err)
	}
	m.logger.Infof("monitored tx %s added, waiting to be mined", id.Hex())

	if m.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.waitTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(m.waitPeriodMonitorTx)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting monitored tx %s: %w", id.Hex(), ctx.Err())

		case <-ticker.C:
			m.logger.Debugf("waiting for tx %s to be mined", id.Hex())
			res, err := m.ethTxMan.Result(ctx, id)
			if err != nil {
				m.logger.Errorf("failed to check the transaction %s status: %s", id.Hex(), err)
				return nil, err
			}

			switch res.Status {
			case ethtxtypes.MonitoredTxStatusCreated,
				ethtxtypes.MonitoredTxStatusSent:
				continue
			case ethtxtypes.MonitoredTxStatusFailed:
				return nil, fmt.Errorf("%w: monitored tx %s failed", ErrTxReverted, id.Hex())
			case ethtxtypes.MonitoredTxStatusMined,
				ethtxtypes.MonitoredTxStatusSafe,
				ethtxtypes.MonitoredTxStatusFinalized:
				m.logger.Debugf("tx %s was successfully mined at block %d", id.Hex(), res.MinedAtBlockNumber)
				receipt, err := m.receipt(ctx, res)
				if err != nil {
					return nil, err
				}
				return checkReceipt(receipt)
			default:
				m.logger.Error("unexpected tx status:", res.Status)
			}
		}
	}
}

// receipt picks the mined receipt out of the monitored result
func (m *MonitoredSender) receipt(ctx context.Context, res ethtxtypes.MonitoredTxResult) (*ethtypes.Receipt, error) {
	for hash, txRes := range res.Txs {
		if txRes.Receipt != nil {
			return txRes.Receipt, nil
		}
		receipt, err := m.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
	}
	return nil, fmt.Errorf("no receipt found for mined monitored tx %s", res.ID.Hex())
}
