package prometheus

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/orbitbridge/depositkit/log"
	prometheusClient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	prefix           = "depositkit_"
	stepDurationName = prefix + "step_duration_seconds"
	runsTotalName    = prefix + "runs_total"
	depositValueName = prefix + "deposit_value_wei"
	txGasUsedName    = prefix + "tx_gas_used"

	// RunSuccess and RunFailure are the values of the result label of runs_total
	RunSuccess = "success"
	RunFailure = "failure"
)

// Metrics are the collectors of a single deposit run. They live in their own registry so that
// only them are pushed.
type Metrics struct {
	registry     *prometheusClient.Registry
	stepDuration *prometheusClient.HistogramVec
	runs         *prometheusClient.CounterVec
	depositValue prometheusClient.Gauge
	gasUsed      *prometheusClient.GaugeVec
}

func NewMetrics() *Metrics {
	registry := prometheusClient.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		stepDuration: factory.NewHistogramVec(prometheusClient.HistogramOpts{
			Name:    stepDurationName,
			Help:    "[DEPOSIT] duration of each step of the deposit flow",
			Buckets: prometheusClient.ExponentialBuckets(0.05, 2, 12), //nolint:mnd
		}, []string{"step"}),
		runs: factory.NewCounterVec(prometheusClient.CounterOpts{
			Name: runsTotalName,
			Help: "[DEPOSIT] number of runs by result",
		}, []string{"result"}),
		depositValue: factory.NewGauge(prometheusClient.GaugeOpts{
			Name: depositValueName,
			Help: "[DEPOSIT] ETH value (wei) sent with the deposit transaction",
		}),
		gasUsed: factory.NewGaugeVec(prometheusClient.GaugeOpts{
			Name: txGasUsedName,
			Help: "[DEPOSIT] gas used by each L1 transaction",
		}, []string{"tx"}),
	}
}

// ObserveStep records how long step took
func (m *Metrics) ObserveStep(step string, d time.Duration) {
	m.stepDuration.WithLabelValues(step).Observe(d.Seconds())
}

func (m *Metrics) RunFinished(err error) {
	if err != nil {
		m.runs.WithLabelValues(RunFailure).Inc()
		return
	}
	m.runs.WithLabelValues(RunSuccess).Inc()
}

func (m *Metrics) SetDepositValue(value *big.Int) {
	if value == nil {
		return
	}
	f, _ := new(big.Float).SetInt(value).Float64()
	m.depositValue.Set(f)
}

func (m *Metrics) SetGasUsed(tx string, gasUsed uint64) {
	m.gasUsed.WithLabelValues(tx).Set(float64(gasUsed))
}

func (m *Metrics) Registry() *prometheusClient.Registry {
	return m.registry
}

// Push sends the collected metrics to the Pushgateway. It is a no-op when disabled.
func Push(ctx context.Context, cfg Config, m *Metrics) error {
	if !cfg.Enabled {
		log.Debug("Prometheus push is disabled")
		return nil
	}
	if cfg.PushGatewayURL == "" {
		return fmt.Errorf("prometheus push enabled but PushGatewayURL is empty")
	}
	job := cfg.JobName
	if job == "" {
		job = "depositkit"
	}
	if err := push.New(cfg.PushGatewayURL, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", cfg.PushGatewayURL, err)
	}
	log.Infof("metrics pushed to %s (job %s)", cfg.PushGatewayURL, job)
	return nil
}
