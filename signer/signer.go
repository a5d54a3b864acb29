package signer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Signer holds the wallet key used to sign L1 transactions
type Signer interface {
	Initialize(ctx context.Context) error
	SignHash(ctx context.Context, hash common.Hash) ([]byte, error)
	PublicAddress() common.Address
	String() string
}

// SignTx signs tx for chainID using the latest signer rules and the hash signature of s
func SignTx(ctx context.Context, s Signer, chainID *big.Int, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
	txSigner := ethtypes.LatestSignerForChainID(chainID)
	sig, err := s.SignHash(ctx, txSigner.Hash(tx))
	if err != nil {
		return nil, fmt.Errorf("signing tx with %s: %w", s.String(), err)
	}
	return tx.WithSignature(txSigner, sig)
}
