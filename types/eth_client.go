package types

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var _ EthClienter = (*ethclient.Client)(nil)

// EthClienter defines the methods used from an Ethereum RPC client, on both L1 and L2.
type EthClienter interface {
	BaseEthereumClienter
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// BaseEthereumClienter defines the methods required to interact with contracts and send transactions.
type BaseEthereumClienter interface {
	ethereum.BlockNumberReader
	ethereum.ChainIDReader
	bind.ContractBackend
}
