package deposit

import (
	"errors"
	"fmt"

	"github.com/orbitbridge/depositkit/arbnetwork"
	"github.com/orbitbridge/depositkit/txsender"
)

var (
	ErrInvalidTokenAddress   = errors.New("invalid ERC20 token address")
	ErrGatewayNotFound       = errors.New("failed to get L1 Gateway address")
	ErrRouterMismatch        = errors.New("router address differs from the network L1 gateway router")
	ErrInsufficientAllowance = errors.New("gateway allowance is lower than the deposit amount")
)

// Kind classifies the failures of a deposit run. No kind is retried.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is a local check that failed before sending anything for that step
	KindValidation
	// KindNetwork is an RPC or contract call failure
	KindNetwork
	// KindTxRejected is a transaction mined with a failed status
	KindTxRejected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindTxRejected:
		return "tx-rejected"
	default:
		return "unknown"
	}
}

// Error is the error returned by every failing step of a deposit run
type Error struct {
	Kind Kind
	Step Step
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("step %s failed (%s): %v", e.Step, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(step Step, err error) *Error {
	return &Error{Kind: classify(err), Step: step, Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidTokenAddress),
		errors.Is(err, ErrGatewayNotFound),
		errors.Is(err, ErrRouterMismatch),
		errors.Is(err, ErrInsufficientAllowance),
		errors.Is(err, arbnetwork.ErrInvalidNetwork),
		errors.Is(err, arbnetwork.ErrNetworkAlreadyRegistered),
		errors.Is(err, arbnetwork.ErrNetworkNotFound):
		return KindValidation
	case errors.Is(err, txsender.ErrTxReverted):
		return KindTxRejected
	default:
		return KindNetwork
	}
}

// KindOf returns the kind of err, KindUnknown if it does not come from a deposit run
func KindOf(err error) Kind {
	var depErr *Error
	if errors.As(err, &depErr) {
		return depErr.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

func IsTxRejected(err error) bool {
	return KindOf(err) == KindTxRejected
}
