package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/0xPolygon/zkevm-ethtx-manager/ethtxmanager"
	ethtxlog "github.com/0xPolygon/zkevm-ethtx-manager/log"
	"github.com/orbitbridge/depositkit"
	"github.com/orbitbridge/depositkit/arbnetwork"
	depositkitcommon "github.com/orbitbridge/depositkit/common"
	"github.com/orbitbridge/depositkit/config"
	"github.com/orbitbridge/depositkit/deposit"
	"github.com/orbitbridge/depositkit/erc20"
	"github.com/orbitbridge/depositkit/erc20bridger"
	"github.com/orbitbridge/depositkit/etherman"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/prometheus"
	"github.com/orbitbridge/depositkit/signer"
	"github.com/orbitbridge/depositkit/txsender"
	aggtypes "github.com/orbitbridge/depositkit/types"
	"github.com/urfave/cli/v2"
)

const (
	signerName         = "depositor"
	metricsPushTimeout = 10 * time.Second
)

func depositCmd(cliCtx *cli.Context) error {
	return runDepositor(cliCtx, func(ctx context.Context, d *deposit.Depositor) error {
		_, err := d.Run(ctx)
		return err
	})
}

func estimateCmd(cliCtx *cli.Context) error {
	return runDepositor(cliCtx, func(ctx context.Context, d *deposit.Depositor) error {
		_, err := d.Estimate(ctx)
		return err
	})
}

// runDepositor loads the config, wires the depositor and hands it to action.
// Metrics are pushed whatever the outcome.
func runDepositor(cliCtx *cli.Context, action func(context.Context, *deposit.Depositor) error) error {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(cfg.Log)

	if cfg.Log.Environment == log.EnvironmentDevelopment {
		depositkit.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if cfg.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	network, err := cfg.L2NetworkDescriptor()
	if err != nil {
		return err
	}

	l1Client, err := etherman.NewRPCClient(ctx, cfg.L1)
	if err != nil {
		return fmt.Errorf("error creating L1 client: %w", err)
	}
	defer l1Client.Close()
	l2Client, err := etherman.NewRPCClient(ctx, cfg.L2)
	if err != nil {
		return fmt.Errorf("error creating L2 client: %w", err)
	}
	defer l2Client.Close()

	checkChainIDs(ctx, network, l1Client, l2Client)

	sender, stopSender, err := newTxSender(ctx, cfg, l1Client)
	if err != nil {
		return err
	}
	defer stopSender()

	metrics := prometheus.NewMetrics()
	bridgerLogger := log.WithFields("module", depositkitcommon.BRIDGER)
	newBridger := func(n *arbnetwork.L2Network) deposit.Bridger {
		return erc20bridger.NewBridger(bridgerLogger, *n, l1Client, l2Client, sender, cfg.Deposit.GasEstimation)
	}
	depositor := deposit.New(
		log.WithFields("module", depositkitcommon.DEPOSIT),
		cfg.Deposit,
		*network,
		arbnetwork.DefaultRegistry(),
		newBridger,
		erc20.NewReader(l1Client),
		sender,
		metrics,
	)

	runErr := action(ctx, depositor)
	pushMetrics(cfg.Prometheus, metrics)
	return runErr
}

// newTxSender builds the sender of cfg.TxSender.Mode. The returned func releases it
func newTxSender(ctx context.Context, cfg *config.Config,
	l1Client aggtypes.EthClienter) (deposit.TxSender, func(), error) {
	logger := log.WithFields("module", depositkitcommon.TXSENDER)
	s, err := signer.NewSigner(signerName, log.WithFields("module", depositkitcommon.SIGNER), ctx, cfg.Signer)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating signer: %w", err)
	}

	switch cfg.TxSender.Mode {
	case txsender.ModeDirect, "":
		return txsender.NewDirectSender(logger, l1Client, s, cfg.TxSender), func() {}, nil
	case txsender.ModeEthTxManager:
		ethTxManager, err := ethtxmanager.New(ethTxManagerConfig(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("error creating ethtxmanager: %w", err)
		}
		go ethTxManager.Start()
		// the ethtxmanager signs with its own keystore, which must hold the signer key
		sender := txsender.NewMonitoredSender(logger, ethTxManager, l1Client, s.PublicAddress(), cfg.TxSender)
		return sender, func() { stopEthTxManager(ethTxManager) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown tx sender mode %q", cfg.TxSender.Mode)
	}
}

// ethTxManagerConfig fills the manager log and L1 endpoint from the depositor config
func ethTxManagerConfig(cfg *config.Config) ethtxmanager.Config {
	ethTxManCfg := cfg.TxSender.EthTxManager
	ethTxManCfg.Log = ethtxlog.Config{
		Environment: ethtxlog.LogEnvironment(cfg.Log.Environment),
		Level:       cfg.Log.Level,
		Outputs:     cfg.Log.Outputs,
	}
	if ethTxManCfg.Etherman.URL == "" {
		ethTxManCfg.Etherman.URL = cfg.L1.URL
	}
	return ethTxManCfg
}

// stopEthTxManager cancels the monitoring loop. Stop fails when Start has not set it up yet
func stopEthTxManager(m *ethtxmanager.Client) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("ethtxmanager was not running: %v", r)
		}
	}()
	m.Stop()
}

// checkChainIDs warns when the endpoints do not belong to the configured network
func checkChainIDs(ctx context.Context, network *arbnetwork.L2Network, l1Client, l2Client aggtypes.EthClienter) {
	if l1ChainID, err := l1Client.ChainID(ctx); err != nil {
		log.Warnf("unable to read L1 chain ID: %v", err)
	} else if l1ChainID.Uint64() != network.PartnerChainID {
		log.Warnf("L1 chain ID %s differs from the network partner chain ID %d", l1ChainID, network.PartnerChainID)
	}
	if l2ChainID, err := l2Client.ChainID(ctx); err != nil {
		log.Warnf("unable to read L2 chain ID: %v", err)
	} else if l2ChainID.Uint64() != network.ChainID {
		log.Warnf("L2 chain ID %s differs from the network chain ID %d", l2ChainID, network.ChainID)
	}
}

func pushMetrics(cfg prometheus.Config, metrics *prometheus.Metrics) {
	ctx, cancel := context.WithTimeout(context.Background(), metricsPushTimeout)
	defer cancel()
	if err := prometheus.Push(ctx, cfg, metrics); err != nil {
		log.Warnf("unable to push metrics: %v", err)
	}
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"version", depositkit.Version,
		"gitRevision", depositkit.GitRev,
		"gitBranch", depositkit.GitBranch,
		"goVersion", runtime.Version(),
		"built", depositkit.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
