package signer

import (
	"context"
	"fmt"

	gosigner "github.com/agglayer/go_signer/signer"
	signertypes "github.com/agglayer/go_signer/signer/types"
	"github.com/orbitbridge/depositkit/log"
)

var (
	ErrUnknownSignerMethod = fmt.Errorf("unknown signer method")
)

func NewSigner(name string, logger *log.Logger, ctx context.Context, cfg SignerConfig) (Signer, error) {
	var res Signer
	if cfg.Method == "" {
		if cfg.PrivateKey != "" {
			logger.Warnf("No signer method specified, private key present: defaulting to %s", MethodPrivateKey)
			cfg.Method = MethodPrivateKey
		} else {
			logger.Warnf("No signer method specified, defaulting to %s (keystore file)", MethodLocal)
			cfg.Method = MethodLocal
		}
	}
	switch cfg.Method {
	case MethodPrivateKey:
		res = NewPrivateKeySign(name, logger, cfg.PrivateKey)
	case MethodLocal:
		s, err := newExternalSign(ctx, name, logger, MethodLocal,
			signertypes.SignerConfig{Method: signertypes.MethodLocal, Config: cfg.Config})
		if err != nil {
			return nil, err
		}
		res = s
	case MethodWeb3Signer:
		s, err := newExternalSign(ctx, name, logger, MethodWeb3Signer,
			signertypes.SignerConfig{Method: signertypes.MethodRemoteSigner, Config: cfg.Config})
		if err != nil {
			return nil, err
		}
		res = s
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignerMethod, cfg.Method)
	}
	if err := res.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initializing signer %s: %w", res.String(), err)
	}
	return res, nil
}

func newExternalSign(ctx context.Context, name string, logger *log.Logger, method string,
	cfg signertypes.SignerConfig) (*ExternalSign, error) {
	s, err := gosigner.NewSigner(ctx, 0, cfg, name, logger)
	if err != nil {
		return nil, fmt.Errorf("creating %s signer: %w", method, err)
	}
	return &ExternalSign{name: name, method: method, signer: s}, nil
}
