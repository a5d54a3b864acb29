package deposit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/orbitbridge/depositkit/arbnetwork"
	"github.com/orbitbridge/depositkit/txsender"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{err: ErrInvalidTokenAddress, kind: KindValidation},
		{err: fmt.Errorf("wrapped: %w", ErrGatewayNotFound), kind: KindValidation},
		{err: arbnetwork.ErrInvalidNetwork, kind: KindValidation},
		{err: arbnetwork.ErrNetworkNotFound, kind: KindValidation},
		{err: fmt.Errorf("approve: %w", txsender.ErrTxReverted), kind: KindTxRejected},
		{err: errors.New("429 too many requests"), kind: KindNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.kind, classify(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	err := newError(StepApprove, txsender.ErrTxReverted)
	require.Equal(t, "step approve failed (tx-rejected): transaction reverted", err.Error())
	require.ErrorIs(t, err, txsender.ErrTxReverted)

	wrapped := fmt.Errorf("run: %w", err)
	require.Equal(t, KindTxRejected, KindOf(wrapped))
	require.True(t, IsTxRejected(wrapped))
	require.False(t, IsNetwork(wrapped))

	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.False(t, IsValidation(nil))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "validation", KindValidation.String())
	require.Equal(t, "network", KindNetwork.String())
	require.Equal(t, "tx-rejected", KindTxRejected.String())
	require.Equal(t, "unknown", Kind(42).String())
}
