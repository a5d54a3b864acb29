package erc20bridger

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// NodeInterfaceAddress is the precompile exposing gas estimation helpers on every Arbitrum chain
var NodeInterfaceAddress = common.HexToAddress("0x00000000000000000000000000000000000000C8")

const inboxABIJSON = `[
	{"type":"function","name":"calculateRetryableSubmissionFee","stateMutability":"view",
	 "inputs":[{"name":"dataLength","type":"uint256"},{"name":"baseFee","type":"uint256"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"error","name":"RetryableData",
	 "inputs":[
		{"name":"from","type":"address"},
		{"name":"to","type":"address"},
		{"name":"l2CallValue","type":"uint256"},
		{"name":"deposit","type":"uint256"},
		{"name":"maxSubmissionCost","type":"uint256"},
		{"name":"excessFeeRefundAddress","type":"address"},
		{"name":"callValueRefundAddress","type":"address"},
		{"name":"gasLimit","type":"uint256"},
		{"name":"maxFeePerGas","type":"uint256"},
		{"name":"data","type":"bytes"}]}
]`

const nodeInterfaceABIJSON = `[
	{"type":"function","name":"estimateRetryableTicket","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"sender","type":"address"},
		{"name":"deposit","type":"uint256"},
		{"name":"to","type":"address"},
		{"name":"l2CallValue","type":"uint256"},
		{"name":"excessFeeRefundAddress","type":"address"},
		{"name":"callValueRefundAddress","type":"address"},
		{"name":"data","type":"bytes"}],
	 "outputs":[]}
]`

const (
	methodCalculateRetryableSubmissionFee = "calculateRetryableSubmissionFee"
	methodEstimateRetryableTicket         = "estimateRetryableTicket"
	errorRetryableData                    = "RetryableData"
)

var (
	inboxABI         = mustParseABI("Inbox", inboxABIJSON)
	nodeInterfaceABI = mustParseABI("NodeInterface", nodeInterfaceABIJSON)
)

func mustParseABI(name, def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
	}
	return parsed
}
