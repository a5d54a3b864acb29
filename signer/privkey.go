package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbitbridge/depositkit/types"
)

var ErrEmptyPrivateKey = errors.New("private key is empty")

// PrivateKeySign signs with a raw secp256k1 key, typically DEVNET_PRIVKEY
type PrivateKeySign struct {
	name          string
	logger        types.Logger
	hexKey        string
	privateKey    *ecdsa.PrivateKey
	publicAddress common.Address
}

func NewPrivateKeySign(name string, logger types.Logger, hexKey string) *PrivateKeySign {
	return &PrivateKeySign{
		name:   name,
		logger: logger,
		hexKey: hexKey,
	}
}

func (p *PrivateKeySign) Initialize(ctx context.Context) error {
	key := strings.TrimPrefix(strings.TrimSpace(p.hexKey), "0x")
	if key == "" {
		return ErrEmptyPrivateKey
	}
	privateKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	p.privateKey = privateKey
	p.publicAddress = crypto.PubkeyToAddress(privateKey.PublicKey)
	p.logger.Debugf("signer %s using wallet %s", p.name, p.publicAddress.Hex())
	return nil
}

func (p *PrivateKeySign) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	if p.privateKey == nil {
		return nil, fmt.Errorf("private key is nil")
	}
	return crypto.Sign(hash.Bytes(), p.privateKey)
}

func (p *PrivateKeySign) PublicAddress() common.Address {
	return p.publicAddress
}

// String never prints the key
func (p *PrivateKeySign) String() string {
	return fmt.Sprintf("%s[%s]: pubAddr: %s", MethodPrivateKey, p.name, p.publicAddress.String())
}
