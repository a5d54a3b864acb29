package erc20bridger

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrNoRetryableData is returned when the deposit probe does not revert with RetryableData
	ErrNoRetryableData = errors.New("no RetryableData found in the deposit probe revert")

	// probe values that make the Inbox revert with RetryableData instead of creating the ticket
	errorTriggeringGasLimit     = big.NewInt(1)
	errorTriggeringMaxFeePerGas = big.NewInt(1)
	errorTriggeringSubmission   = big.NewInt(1)
)

// RetryableData are the parameters of the L2 retryable ticket created by a deposit
type RetryableData struct {
	From                   common.Address `json:"from"`
	To                     common.Address `json:"to"`
	L2CallValue            *big.Int       `json:"l2CallValue"`
	Deposit                *big.Int       `json:"deposit"`
	MaxSubmissionCost      *big.Int       `json:"maxSubmissionCost"`
	ExcessFeeRefundAddress common.Address `json:"excessFeeRefundAddress"`
	CallValueRefundAddress common.Address `json:"callValueRefundAddress"`
	GasLimit               *big.Int       `json:"gasLimit"`
	MaxFeePerGas           *big.Int       `json:"maxFeePerGas"`
	Data                   hexutil.Bytes  `json:"data"`
}

func (r RetryableData) String() string {
	return fmt.Sprintf("from: %s, to: %s, l2CallValue: %s, deposit: %s, maxSubmissionCost: %s, gasLimit: %s, maxFeePerGas: %s",
		r.From.Hex(), r.To.Hex(), r.L2CallValue, r.Deposit, r.MaxSubmissionCost, r.GasLimit, r.MaxFeePerGas)
}

// ParseRetryableData extracts RetryableData from the error of an eth_call. The revert payload is
// taken from rpc.DataError, as returned by go-ethereum clients.
func ParseRetryableData(callErr error) (*RetryableData, error) {
	var dataErr rpc.DataError
	if callErr == nil || !errors.As(callErr, &dataErr) {
		return nil, ErrNoRetryableData
	}
	var revert []byte
	switch v := dataErr.ErrorData().(type) {
	case string:
		decoded, err := hexutil.Decode(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid revert data %q: %w", ErrNoRetryableData, v, err)
		}
		revert = decoded
	case []byte:
		revert = v
	default:
		return nil, ErrNoRetryableData
	}
	return DecodeRetryableData(revert)
}

// DecodeRetryableData decodes the RetryableData custom error (selector included)
func DecodeRetryableData(revert []byte) (*RetryableData, error) {
	abiErr := inboxABI.Errors[errorRetryableData]
	if len(revert) < 4 || !bytes.Equal(revert[:4], abiErr.ID[:4]) {
		return nil, ErrNoRetryableData
	}
	values, err := abiErr.Inputs.Unpack(revert[4:])
	if err != nil {
		return nil, fmt.Errorf("unpacking RetryableData: %w", err)
	}
	return &RetryableData{
		From:                   values[0].(common.Address),
		To:                     values[1].(common.Address),
		L2CallValue:            values[2].(*big.Int),
		Deposit:                values[3].(*big.Int),
		MaxSubmissionCost:      values[4].(*big.Int),
		ExcessFeeRefundAddress: values[5].(common.Address),
		CallValueRefundAddress: values[6].(common.Address),
		GasLimit:               values[7].(*big.Int),
		MaxFeePerGas:           values[8].(*big.Int),
		Data:                   values[9].([]byte),
	}, nil
}

// EncodeRetryableData builds the revert payload, used to fake Inbox reverts
func EncodeRetryableData(r RetryableData) ([]byte, error) {
	abiErr := inboxABI.Errors[errorRetryableData]
	packed, err := abiErr.Inputs.Pack(r.From, r.To, nonNil(r.L2CallValue), nonNil(r.Deposit),
		nonNil(r.MaxSubmissionCost), r.ExcessFeeRefundAddress, r.CallValueRefundAddress,
		nonNil(r.GasLimit), nonNil(r.MaxFeePerGas), []byte(r.Data))
	if err != nil {
		return nil, err
	}
	return append(abiErr.ID[:4:4], packed...), nil
}

func nonNil(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
