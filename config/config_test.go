package config

import (
	"context"
	"errors"
	"flag"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/orbitbridge/depositkit/arbnetwork"
	"github.com/orbitbridge/depositkit/deposit"
	ethermanconfig "github.com/orbitbridge/depositkit/etherman/config"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/txsender"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLExploratorySetConfigFlag(t *testing.T) {
	value := []string{"config.json", "another_config.json"}
	ctx := newCliContextConfigFlag(t, value...)
	configFilePath := ctx.StringSlice(FlagCfg)
	require.Equal(t, value, configFilePath)
}

func TestLoadDefaultConfig(t *testing.T) {
	unsetLegacyEnv(t)
	ctx := newCliContextConfigFlag(t, writeTempConfig(t, "*.toml", DefaultMandatoryVars))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, log.EnvironmentDevelopment, cfg.Log.Environment)
	require.Equal(t, ethermanconfig.RPCClientConfig{URL: "http://localhost:8545"}, cfg.L1)
	require.Equal(t, ethermanconfig.RPCClientConfig{URL: "http://localhost:8547"}, cfg.L2)
	require.Equal(t, "privkey", cfg.Signer.Method)
	require.Equal(t, common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"), cfg.Deposit.TokenAddr)
	require.Equal(t, common.HexToAddress("0xf446986e261E84aB2A55159F3Fba60F7E8AeDdAF"), cfg.Deposit.RouterAddr)
	require.Equal(t, big.NewInt(1000000), cfg.Deposit.Amount.Int)
	require.True(t, cfg.Deposit.ApproveAmount.IsZero())
	require.Equal(t, common.Address{}, cfg.Deposit.RefundTo)
	require.False(t, cfg.Deposit.RequireRouterMatch)
	require.Equal(t, uint64(500), cfg.Deposit.GasEstimation.MaxFeePerGasPercentIncrease)
	require.Equal(t, uint64(300), cfg.Deposit.GasEstimation.MaxSubmissionFeePercentIncrease)
	require.Equal(t, txsender.ModeDirect, cfg.TxSender.Mode)
	require.Equal(t, time.Second, cfg.TxSender.WaitPeriodMonitorTx.Duration)
	require.Equal(t, "/tmp/depositkit/ethtxmanager-depositor.sqlite", cfg.TxSender.EthTxManager.StoragePath)
	require.Empty(t, cfg.TxSender.EthTxManager.Etherman.URL)
	require.False(t, cfg.Prometheus.Enabled)
	require.Equal(t, "depositkit", cfg.Prometheus.JobName)
	require.True(t, cfg.L2Network.IsEmpty())
}

func TestLoadConfigLegacyEnvVars(t *testing.T) {
	unsetLegacyEnv(t)
	t.Setenv(EnvL1RPC, "http://l1.example:8545")
	t.Setenv(EnvL2RPC, "http://l2.example:8547")
	t.Setenv(EnvPrivateKey, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")

	cfg, err := LoadFile(nil, "", true, false)
	require.NoError(t, err)
	require.Equal(t, "http://l1.example:8545", cfg.L1.URL)
	require.Equal(t, "http://l2.example:8547", cfg.L2.URL)
	require.Equal(t, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", cfg.Signer.PrivateKey)
}

func TestLoadConfigPrefixedEnvVarWins(t *testing.T) {
	unsetLegacyEnv(t)
	t.Setenv(EnvL1RPC, "http://legacy:8545")
	t.Setenv("DEPOSITKIT_L1_URL", "http://prefixed:8545")
	t.Setenv("DEPOSITKIT_DEPOSIT_AMOUNT", "0x10")

	cfg, err := LoadFile(nil, "", true, false)
	require.NoError(t, err)
	require.Equal(t, "http://prefixed:8545", cfg.L1.URL)
	require.Equal(t, big.NewInt(16), cfg.Deposit.Amount.Int)
}

func TestLoadConfigEnvFile(t *testing.T) {
	unsetLegacyEnv(t)
	envFile := filepath.Join(t.TempDir(), "deposit.env")
	require.NoError(t, os.WriteFile(envFile, []byte("L2RPC=http://from-env-file:8547\n"), 0600))

	ctx := newCliContextConfigFlag(t)
	require.NoError(t, ctx.Set(FlagEnvFile, envFile))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "http://from-env-file:8547", cfg.L2.URL)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	ctx := newCliContextConfigFlag(t)
	require.NoError(t, ctx.Set(FlagEnvFile, filepath.Join(t.TempDir(), "missing.env")))
	cfg, err := Load(ctx)
	require.ErrorContains(t, err, "error loading env file")
	require.Nil(t, cfg)
}

func TestLoadConfigOverridesAndVars(t *testing.T) {
	unsetLegacyEnv(t)
	file := writeTempConfig(t, "*.toml", `
PathRWData = "/data"
ExtraGas = 21000

[Deposit]
Amount = 5000
ApproveAmount = "0xffff"
To = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

[TxSender]
Mode = "ethtxmanager"
GasOffset = {{ExtraGas}}
`)
	cfg, err := Load(newCliContextConfigFlag(t, file))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5000), cfg.Deposit.Amount.Int)
	require.Equal(t, big.NewInt(0xffff), cfg.Deposit.ApproveAmount.Int)
	require.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), cfg.Deposit.To)
	require.Equal(t, txsender.ModeEthTxManager, cfg.TxSender.Mode)
	require.Equal(t, uint64(21000), cfg.TxSender.GasOffset)
	require.Equal(t, "/data/ethtxmanager-depositor.sqlite", cfg.TxSender.EthTxManager.StoragePath)
}

func TestLoadConfigFromJSON(t *testing.T) {
	unsetLegacyEnv(t)
	file := writeTempConfig(t, "*.json", `{"Deposit": {"Amount": "77", "RequireRouterMatch": true}}`)
	cfg, err := Load(newCliContextConfigFlag(t, file))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(77), cfg.Deposit.Amount.Int)
	require.True(t, cfg.Deposit.RequireRouterMatch)
}

func TestLoadConfigEmptyAddresses(t *testing.T) {
	unsetLegacyEnv(t)
	file := writeTempConfig(t, "*.toml", `
[Deposit]
TokenAddr = ""
RouterAddr = ""
RefundTo = " "
`)
	cfg, err := Load(newCliContextConfigFlag(t, file))
	require.NoError(t, err)
	require.Equal(t, common.Address{}, cfg.Deposit.TokenAddr)
	require.Equal(t, common.Address{}, cfg.Deposit.RouterAddr)
	require.Equal(t, common.Address{}, cfg.Deposit.RefundTo)
	require.Equal(t, big.NewInt(1000000), cfg.Deposit.Amount.Int)
}

func TestLoadConfigEmptyTokenAddrFailsValidation(t *testing.T) {
	unsetLegacyEnv(t)
	file := writeTempConfig(t, "*.toml", "[Deposit]\nTokenAddr = \"\"\n")
	ctx := newCliContextConfigFlag(t, file)
	require.NoError(t, ctx.Set(FlagNetwork, "../arbnetwork/testdata/l2network.json"))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	network, err := cfg.L2NetworkDescriptor()
	require.NoError(t, err)

	newBridger := func(*arbnetwork.L2Network) deposit.Bridger { return nil }
	depositor := deposit.New(log.WithFields("test", "config"), cfg.Deposit, *network,
		arbnetwork.NewRegistry(), newBridger, nil, nil, nil)
	_, err = depositor.Estimate(context.Background())
	require.ErrorIs(t, err, deposit.ErrInvalidTokenAddress)
	require.True(t, deposit.IsValidation(err))
}

func TestLoadConfigUnsupportedExtension(t *testing.T) {
	file := writeTempConfig(t, "*.yaml", "Deposit:\n  Amount: 1\n")
	_, err := Load(newCliContextConfigFlag(t, file))
	require.ErrorContains(t, err, "unsupported config file type: yaml")
}

func TestLoadConfigWithSaveConfigFile(t *testing.T) {
	unsetLegacyEnv(t)
	t.Setenv(EnvPrivateKey, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	ctx := newCliContextConfigFlag(t, writeTempConfig(t, "*.toml", DefaultVars+"\n"))
	dir := t.TempDir()

	err := ctx.Set(FlagSaveConfigPath, dir)
	require.NoError(t, err)
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	saved, err := os.ReadFile(filepath.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	require.NotContains(t, string(saved), "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.Contains(t, string(saved), "<redacted>")
	_, err = os.Stat(filepath.Join(dir, SaveConfigFileName+".merged"))
	require.NoError(t, err)
}

func TestLoadConfigWithInvalidFilename(t *testing.T) {
	ctx := newCliContextConfigFlag(t, "invalid_file")
	cfg, err := Load(ctx)
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoadConfigWithDeprecatedFields(t *testing.T) {
	unsetLegacyEnv(t)
	file := writeTempConfig(t, "*.toml", `
L1RPC = "http://localhost:8545"
DEVNET_PRIVKEY = "0x01"

[Deposit]
PrivateKey = "0x01"
`)
	ctx := newCliContextConfigFlag(t, file)
	_, err := Load(ctx)
	require.Error(t, err)
	var deprecatedErr *DeprecatedFieldsError
	require.True(t, errors.As(err, &deprecatedErr))
	require.Contains(t, err.Error(), envVarOnConfigFile)
	require.Contains(t, err.Error(), privateKeyOnDeposit)
	require.Len(t, deprecatedErr.Fields[DeprecatedField{FieldNamePattern: "L1RPC", Reason: envVarOnConfigFile}], 1)

	require.NoError(t, ctx.Set(FlagAllowDeprecatedFields, "true"))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestLoadConfigNetworkFlag(t *testing.T) {
	unsetLegacyEnv(t)
	ctx := newCliContextConfigFlag(t)
	require.NoError(t, ctx.Set(FlagNetwork, "../arbnetwork/testdata/l2network.json"))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "../arbnetwork/testdata/l2network.json", cfg.NetworkFile)

	network, err := cfg.L2NetworkDescriptor()
	require.NoError(t, err)
	require.Equal(t, uint64(89346162), network.ChainID)
	require.Equal(t, uint64(11155111), network.PartnerChainID)
}

func TestL2NetworkDescriptor(t *testing.T) {
	t.Run("inline section", func(t *testing.T) {
		unsetLegacyEnv(t)
		file := writeTempConfig(t, "*.toml", `
[L2Network]
ChainID = 412346
PartnerChainID = 1337
Name = "devnet"
	[L2Network.EthBridge]
	Inbox = "0x9f8c1c641336A371031499e3c362e40d58d0f254"
	[L2Network.TokenBridge]
	L1GatewayRouter = "0x0C085152C2799834fc1603533ff6916fa1FdA302"
`)
		cfg, err := Load(newCliContextConfigFlag(t, file))
		require.NoError(t, err)
		network, err := cfg.L2NetworkDescriptor()
		require.NoError(t, err)
		require.Equal(t, uint64(412346), network.ChainID)
		require.Equal(t, common.HexToAddress("0x0C085152C2799834fc1603533ff6916fa1FdA302"),
			network.TokenBridge.L1GatewayRouter)
		require.NoError(t, network.Validate())
	})

	t.Run("nothing configured", func(t *testing.T) {
		cfg := &Config{}
		_, err := cfg.L2NetworkDescriptor()
		require.ErrorIs(t, err, ErrNoL2Network)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{NetworkFile: filepath.Join(t.TempDir(), "none.json"), L2Network: arbnetwork.L2Network{ChainID: 1}}
		_, err := cfg.L2NetworkDescriptor()
		require.ErrorContains(t, err, "reading network file")
	})
}

func TestRedactSecrets(t *testing.T) {
	in := "[Signer]\n  PrivateKey = \"0xabc\"\n  [Signer.Config]\n    password = \"pw\"\n" +
		"[TxSender.EthTxManager]\n  PrivateKeys = [{Path = \"a\"}]\n"
	out := redactSecrets(in)
	require.Contains(t, out, "  PrivateKey = \"<redacted>\"")
	require.Contains(t, out, "    password = \"<redacted>\"")
	require.Contains(t, out, "PrivateKeys = [{Path = \"a\"}]")
	require.NotContains(t, out, "0xabc")
	require.NotContains(t, out, "pw")
}

func newCliContextConfigFlag(t *testing.T, values ...string) *cli.Context {
	t.Helper()
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	var configFilePaths cli.StringSlice
	flagSet.Var(&configFilePaths, FlagCfg, "")
	flagSet.Bool(FlagAllowDeprecatedFields, false, "")
	flagSet.Bool(FlagDisableDefaultConfigVars, false, "")
	flagSet.String(FlagSaveConfigPath, "", "")
	flagSet.String(FlagNetwork, "", "")
	flagSet.String(FlagEnvFile, "", "")
	for _, value := range values {
		err := flagSet.Parse([]string{"--" + FlagCfg, value})
		require.NoError(t, err)
	}
	return cli.NewContext(nil, flagSet, nil)
}

func writeTempConfig(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

// unsetLegacyEnv clears the variables read by the loader, they are restored after the test
func unsetLegacyEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvL1RPC, EnvL2RPC, EnvPrivateKey, "DEPOSITKIT_L1_URL", "DEPOSITKIT_L2_URL"} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
}
