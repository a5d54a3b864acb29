package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/orbitbridge/depositkit/config"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	require.Equal(t, 0, run([]string{appName, "version"}))
}

func TestVersionCmdWritesBuildInfo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{appName, "version"}))
	require.Contains(t, out.String(), "depositkit")
	require.Contains(t, out.String(), "Git revision")
}

func TestSchemaCmd(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{appName, "schema"}))
	require.Contains(t, out.String(), `"Deposit"`)
	require.Contains(t, out.String(), `"TxSender"`)
}

func TestRunDepositFailsWithMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	require.Equal(t, 1, run([]string{appName, "deposit", "--cfg", missing}))
	require.Equal(t, 1, run([]string{appName, "estimate", "--cfg", missing}))
}

func TestRunDepositFailsWithoutNetwork(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[Log]\nLevel = \"error\"\n"), 0600))
	require.Equal(t, 1, run([]string{appName, "deposit", "--cfg", cfgFile}))
}

func TestRunDepositFailsWithInvalidRPCURL(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "cfg.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[Log]\nLevel = \"error\"\n[L1]\nURL = \"ftp://localhost\"\n"), 0600))
	require.Equal(t, 1, run([]string{appName, "deposit", "--cfg", cfgFile,
		"--network", "../arbnetwork/testdata/l2network.json"}))
}

func TestRunUnknownFlag(t *testing.T) {
	require.Equal(t, 1, run([]string{appName, "deposit", "--unknown-flag"}))
}

func TestEthTxManagerConfigFollowsL1URL(t *testing.T) {
	for _, env := range []string{config.EnvL1RPC, "DEPOSITKIT_L1_URL", "DEPOSITKIT_TXSENDER_ETHTXMANAGER_ETHERMAN_URL"} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	t.Setenv(config.EnvL1RPC, "http://l1.example:8545")

	cfg, err := config.LoadFile(nil, "", true, false)
	require.NoError(t, err)
	ethTxManCfg := ethTxManagerConfig(cfg)
	require.Equal(t, "http://l1.example:8545", ethTxManCfg.Etherman.URL)
	require.Equal(t, cfg.Log.Level, ethTxManCfg.Log.Level)

	cfg.TxSender.EthTxManager.Etherman.URL = "http://manager.example:8545"
	require.Equal(t, "http://manager.example:8545", ethTxManagerConfig(cfg).Etherman.URL)
}
