package signer

import (
	"context"
	"fmt"

	signertypes "github.com/agglayer/go_signer/signer/types"
	"github.com/ethereum/go-ethereum/common"
)

// ExternalSign wraps the keystore and web3signer implementations of go_signer
type ExternalSign struct {
	name   string
	method string
	signer signertypes.Signer
}

func (e *ExternalSign) Initialize(ctx context.Context) error {
	return e.signer.Initialize(ctx)
}

func (e *ExternalSign) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	return e.signer.SignHash(ctx, hash)
}

func (e *ExternalSign) PublicAddress() common.Address {
	return e.signer.PublicAddress()
}

func (e *ExternalSign) String() string {
	return fmt.Sprintf("%s[%s]: pubAddr: %s", e.method, e.name, e.PublicAddress().String())
}
