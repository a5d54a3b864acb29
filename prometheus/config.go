package prometheus

// Config represents the configuration of the metrics
type Config struct {
	// Enabled is the flag to enable/disable the metrics push at the end of a run
	Enabled bool `mapstructure:"Enabled"`
	// PushGatewayURL is the base URL of the Prometheus Pushgateway
	PushGatewayURL string `mapstructure:"PushGatewayURL"`
	// JobName is the job label of the pushed group
	JobName string `mapstructure:"JobName"`
}
