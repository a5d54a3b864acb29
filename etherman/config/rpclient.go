package config

import (
	"fmt"
	"net/url"
)

// RPCClientConfig is the configuration of a JSON-RPC endpoint (L1 or L2)
type RPCClientConfig struct {
	// URL of the JSON-RPC endpoint (http, https, ws or wss)
	URL string `mapstructure:"URL"`
	// HTTPHeaders are extra headers sent on every request, e.g. provider API keys
	HTTPHeaders map[string]string `jsonschema:"omitempty" mapstructure:"HTTPHeaders"`
}

// Validate checks the URL is usable by the rpc client
func (c RPCClientConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("empty RPC URL")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid RPC URL %s: %w", c.URL, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return nil
	default:
		return fmt.Errorf("unsupported RPC URL scheme %q in %s", u.Scheme, c.URL)
	}
}

// String avoids leaking API keys embedded in the URL path or query
func (c RPCClientConfig) String() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "RPCClientConfig{URL: <invalid>}"
	}
	u.RawQuery = ""
	u.User = nil
	return fmt.Sprintf("RPCClientConfig{URL: %s://%s, headers: %d}", u.Scheme, u.Host, len(c.HTTPHeaders))
}
