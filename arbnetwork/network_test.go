package arbnetwork

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func validNetwork() L2Network {
	return L2Network{
		ChainID:        89346162,
		PartnerChainID: 11155111,
		Name:           "test",
		EthBridge: EthBridge{
			Inbox: common.HexToAddress("0x7b2f9c1D4a5E6F70819203a4B5c6D7E8F9a0B1C2"),
		},
		TokenBridge: TokenBridge{
			L1GatewayRouter: common.HexToAddress("0xf446986e261E84aB2A55159F3Fba60F7E8AeDdAF"),
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(n *L2Network)
		errMsg string
	}{
		{name: "valid", modify: func(n *L2Network) {}},
		{name: "no chainID", modify: func(n *L2Network) { n.ChainID = 0 }, errMsg: "chainID is zero"},
		{name: "no parent", modify: func(n *L2Network) { n.PartnerChainID = 0 }, errMsg: "partnerChainID is zero"},
		{name: "same chain", modify: func(n *L2Network) { n.PartnerChainID = n.ChainID }, errMsg: "are both"},
		{name: "no inbox", modify: func(n *L2Network) { n.EthBridge.Inbox = common.Address{} }, errMsg: "inbox is zero"},
		{
			name:   "no router",
			modify: func(n *L2Network) { n.TokenBridge.L1GatewayRouter = common.Address{} },
			errMsg: "l1GatewayRouter is zero",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNetwork()
			tt.modify(&n)
			err := n.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidNetwork)
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestIsEmpty(t *testing.T) {
	require.True(t, L2Network{}.IsEmpty())
	require.False(t, validNetwork().IsEmpty())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.GetL2Network(89346162)
	require.ErrorIs(t, err, ErrNetworkNotFound)

	n := validNetwork()
	require.NoError(t, r.AddCustomNetwork(n))
	require.ErrorIs(t, r.AddCustomNetwork(n), ErrNetworkAlreadyRegistered)

	got, err := r.GetL2Network(n.ChainID)
	require.NoError(t, err)
	require.True(t, got.IsCustom)
	require.Equal(t, n.TokenBridge, got.TokenBridge)

	// the returned value is a copy
	got.Name = "changed"
	again, err := r.GetL2Network(n.ChainID)
	require.NoError(t, err)
	require.Equal(t, "test", again.Name)

	other := validNetwork()
	other.ChainID = 42
	require.NoError(t, r.AddCustomNetwork(other))
	got, err = r.GetL2Network(42)
	require.NoError(t, err)
	require.Equal(t, uint64(42), got.ChainID)

	invalid := validNetwork()
	invalid.ChainID = 0
	require.ErrorIs(t, r.AddCustomNetwork(invalid), ErrInvalidNetwork)
}

func TestDefaultRegistry(t *testing.T) {
	n := validNetwork()
	n.ChainID = 777001
	require.NoError(t, DefaultRegistry().AddCustomNetwork(n))
	got, err := DefaultRegistry().GetL2Network(n.ChainID)
	require.NoError(t, err)
	require.Equal(t, n.ChainID, got.ChainID)
	require.Same(t, defaultRegistry, DefaultRegistry())
}

func TestLoadNetworkFile(t *testing.T) {
	n, err := LoadNetworkFile(filepath.Join("testdata", "l2network.json"))
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	require.Equal(t, uint64(89346162), n.ChainID)
	require.Equal(t, uint64(11155111), n.PartnerChainID)
	require.Equal(t, "Orbit Devnet", n.Name)
	require.Equal(t, common.HexToAddress("0xf446986e261E84aB2A55159F3Fba60F7E8AeDdAF"), n.TokenBridge.L1GatewayRouter)
	require.Equal(t, common.HexToAddress("0x7b2f9c1D4a5E6F70819203a4B5c6D7E8F9a0B1C2"), n.EthBridge.Inbox)
	require.Equal(t, uint64(604800), n.RetryableLifetimeSeconds)

	_, err = LoadNetworkFile(filepath.Join("testdata", "missing.json"))
	require.ErrorContains(t, err, "reading network file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = LoadNetworkFile(bad)
	require.ErrorContains(t, err, "parsing network file")
}
