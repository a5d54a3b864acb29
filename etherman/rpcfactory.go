package etherman

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/orbitbridge/depositkit"
	ethermanconfig "github.com/orbitbridge/depositkit/etherman/config"
	"github.com/orbitbridge/depositkit/log"
	aggtypes "github.com/orbitbridge/depositkit/types"
)

const userAgentHeader = "User-Agent"

// NewRPCClient dials the endpoint described by cfg. For http endpoints the
// connection is lazy, so errors about reachability show up on the first call.
func NewRPCClient(ctx context.Context, cfg ethermanconfig.RPCClientConfig) (aggtypes.EthClienter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []ethrpc.ClientOption{
		ethrpc.WithHeader(userAgentHeader, depositkit.GetVersion().Brief()),
	}
	for k, v := range cfg.HTTPHeaders {
		opts = append(opts, ethrpc.WithHeader(k, v))
	}
	log.Debugf("Creating RPC client for %s", cfg.String())
	rpcClient, err := ethrpc.DialOptions(ctx, cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("fails to create RPC client for %s. Err: %w", cfg.String(), err)
	}
	return ethclient.NewClient(rpcClient), nil
}
