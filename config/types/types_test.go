package types

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	require.Equal(t, 90*time.Second, d.Duration)

	require.Error(t, d.UnmarshalText([]byte("ten seconds")))

	text, err := NewDuration(300 * time.Millisecond).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "300ms", string(text))
}

func TestBigIntUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *big.Int
		errMsg   string
	}{
		{name: "decimal", input: "1000000", expected: big.NewInt(1000000)},
		{name: "hexadecimal", input: "0xf4240", expected: big.NewInt(1000000)},
		{name: "padded", input: "  42 ", expected: big.NewInt(42)},
		{name: "empty", input: "", errMsg: "empty amount"},
		{name: "garbage", input: "1e6", errMsg: "invalid amount"},
		{name: "negative", input: "-1", errMsg: "negative amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BigInt
			err := b.UnmarshalText([]byte(tt.input))
			if tt.errMsg != "" {
				require.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 0, tt.expected.Cmp(b.Int))
		})
	}
}

func TestBigIntHelpers(t *testing.T) {
	require.True(t, BigInt{}.IsZero())
	require.True(t, NewBigInt(big.NewInt(0)).IsZero())
	require.True(t, NewBigInt(nil).IsZero())

	src := big.NewInt(7)
	b := NewBigInt(src)
	src.SetInt64(8)
	require.Equal(t, int64(7), b.Int64())

	text, err := b.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "7", string(text))

	text, err = BigInt{}.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "0", string(text))
}
