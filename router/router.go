package router

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const (
	methodGetGateway                   = "getGateway"
	methodOutboundTransferCustomRefund = "outboundTransferCustomRefund"
)

var (
	parsedABI abi.ABI

	uint256Type, _ = abi.NewType("uint256", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)

	// submissionDataArgs is abi.encode(uint256 maxSubmissionCost, bytes callHookData)
	submissionDataArgs = abi.Arguments{{Type: uint256Type}, {Type: bytesType}}
)

func init() {
	var err error
	parsedABI, err = abi.JSON(strings.NewReader(L1GatewayRouterABI))
	if err != nil {
		panic(fmt.Sprintf("invalid L1GatewayRouter ABI: %v", err))
	}
}

// ABI returns the parsed L1GatewayRouter ABI
func ABI() abi.ABI {
	return parsedABI
}

// OutboundTransfer are the arguments of outboundTransfer / outboundTransferCustomRefund
type OutboundTransfer struct {
	Token       common.Address
	RefundTo    common.Address
	To          common.Address
	Amount      *big.Int
	MaxGas      *big.Int
	GasPriceBid *big.Int
	Data        []byte
}

func (o OutboundTransfer) String() string {
	return fmt.Sprintf("token: %s, refundTo: %s, to: %s, amount: %s, maxGas: %s, gasPriceBid: %s, data: 0x%x",
		o.Token.Hex(), o.RefundTo.Hex(), o.To.Hex(), o.Amount, o.MaxGas, o.GasPriceBid, o.Data)
}

// EncodeSubmissionData returns abi.encode(uint256 maxSubmissionCost, bytes callHookData), the _data
// argument the gateway forwards to the Inbox
func EncodeSubmissionData(maxSubmissionCost *big.Int, callHookData []byte) ([]byte, error) {
	if maxSubmissionCost == nil {
		return nil, fmt.Errorf("maxSubmissionCost is nil")
	}
	if callHookData == nil {
		callHookData = []byte{}
	}
	return submissionDataArgs.Pack(maxSubmissionCost, callHookData)
}

// DecodeSubmissionData is the inverse of EncodeSubmissionData
func DecodeSubmissionData(data []byte) (*big.Int, []byte, error) {
	values, err := submissionDataArgs.Unpack(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding submission data: %w", err)
	}
	return values[0].(*big.Int), values[1].([]byte), nil
}

func PackOutboundTransferCustomRefund(t OutboundTransfer) ([]byte, error) {
	return parsedABI.Pack(methodOutboundTransferCustomRefund,
		t.Token, t.RefundTo, t.To, nonNil(t.Amount), nonNil(t.MaxGas), nonNil(t.GasPriceBid), nonNilBytes(t.Data))
}

// DecodeOutboundTransferCustomRefund decodes calldata (selector included) built by PackOutboundTransferCustomRefund
func DecodeOutboundTransferCustomRefund(calldata []byte) (*OutboundTransfer, error) {
	method := parsedABI.Methods[methodOutboundTransferCustomRefund]
	if len(calldata) < len(method.ID) || !bytes.Equal(calldata[:len(method.ID)], method.ID) {
		return nil, fmt.Errorf("calldata is not %s", methodOutboundTransferCustomRefund)
	}
	values, err := method.Inputs.Unpack(calldata[len(method.ID):])
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", methodOutboundTransferCustomRefund, err)
	}
	return &OutboundTransfer{
		Token:       values[0].(common.Address),
		RefundTo:    values[1].(common.Address),
		To:          values[2].(common.Address),
		Amount:      values[3].(*big.Int),
		MaxGas:      values[4].(*big.Int),
		GasPriceBid: values[5].(*big.Int),
		Data:        values[6].([]byte),
	}, nil
}

// GatewayRouter reads the L1GatewayRouter contract
type GatewayRouter struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewGatewayRouter(address common.Address, caller bind.ContractCaller) *GatewayRouter {
	return &GatewayRouter{
		address:  address,
		contract: bind.NewBoundContract(address, parsedABI, caller, nil, nil),
	}
}

func (r *GatewayRouter) Address() common.Address {
	return r.address
}

// GetGateway returns the L1 gateway registered for token, or the default gateway. The zero address
// means the router knows no gateway for it.
func (r *GatewayRouter) GetGateway(ctx context.Context, token common.Address) (common.Address, error) {
	return r.callAddress(ctx, methodGetGateway, token)
}

func (r *GatewayRouter) callAddress(ctx context.Context, method string, params ...interface{}) (common.Address, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return common.Address{}, fmt.Errorf("calling %s on router %s: %w", method, r.address.Hex(), err)
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func nonNil(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func nonNilBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
