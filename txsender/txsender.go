package txsender

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrTxReverted is returned when a transaction was mined with status 0
	ErrTxReverted = errors.New("transaction reverted")
)

// TxRequest is a transaction to be built, signed and sent by a sender
type TxRequest struct {
	To    *common.Address
	Value *big.Int
	Data  []byte
}

func (r TxRequest) String() string {
	to := "<create>"
	if r.To != nil {
		to = r.To.Hex()
	}
	return fmt.Sprintf("to: %s, value: %s, data: %d bytes", to, r.value(), len(r.Data))
}

func (r TxRequest) value() *big.Int {
	if r.Value == nil {
		return new(big.Int)
	}
	return r.Value
}

func checkReceipt(receipt *ethtypes.Receipt) (*ethtypes.Receipt, error) {
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		return receipt, fmt.Errorf("%w: tx %s at block %s", ErrTxReverted, receipt.TxHash.Hex(), receipt.BlockNumber)
	}
	return receipt, nil
}
