package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/invopop/jsonschema"
)

// BigInt is a config wrapper for token amounts. It accepts decimal values and
// 0x prefixed hexadecimal values.
type BigInt struct {
	*big.Int
}

// NewBigInt returns a BigInt holding a copy of v
func NewBigInt(v *big.Int) BigInt {
	if v == nil {
		return BigInt{}
	}
	return BigInt{new(big.Int).Set(v)}
}

// UnmarshalText parses the amount
func (b *BigInt) UnmarshalText(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return fmt.Errorf("empty amount")
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return fmt.Errorf("invalid amount %q", string(data))
	}
	if v.Sign() < 0 {
		return fmt.Errorf("negative amount %q", string(data))
	}
	b.Int = v
	return nil
}

// MarshalText marshals the amount in decimal
func (b BigInt) MarshalText() ([]byte, error) {
	if b.Int == nil {
		return []byte("0"), nil
	}
	return []byte(b.Int.String()), nil
}

// IsZero returns true when the amount is unset or zero
func (b BigInt) IsZero() bool {
	return b.Int == nil || b.Int.Sign() == 0
}

func (BigInt) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "BigInt",
		Description: "Unsigned integer in decimal or 0x prefixed hexadecimal notation",
		Examples: []interface{}{
			"1000000",
			"0xf4240",
		},
	}
}
