package txsender

import (
	"github.com/0xPolygon/zkevm-ethtx-manager/ethtxmanager"
	"github.com/orbitbridge/depositkit/config/types"
)

const (
	// ModeDirect signs locally and broadcasts through the L1 client
	ModeDirect = "direct"
	// ModeEthTxManager hands the transactions to zkevm-ethtx-manager
	ModeEthTxManager = "ethtxmanager"
)

type Config struct {
	// Mode selects the sender implementation
	Mode string `jsonschema:"enum=direct, enum=ethtxmanager" mapstructure:"Mode"`
	// GasOffset is added to the estimated gas of every transaction
	GasOffset uint64 `mapstructure:"GasOffset"`
	// GasLimitMultiplier scales the estimated gas before adding GasOffset (direct mode)
	GasLimitMultiplier float64 `mapstructure:"GasLimitMultiplier"`
	// WaitTxToBeMinedTimeout bounds the wait for a receipt, 0 means no bound
	WaitTxToBeMinedTimeout types.Duration `mapstructure:"WaitTxToBeMinedTimeout"`
	// WaitPeriodMonitorTx is the polling period of the ethtxmanager result
	WaitPeriodMonitorTx types.Duration `mapstructure:"WaitPeriodMonitorTx"`
	// EthTxManager is only used in ethtxmanager mode
	EthTxManager ethtxmanager.Config `mapstructure:"EthTxManager"`
}
