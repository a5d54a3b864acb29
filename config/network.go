package config

import (
	"errors"
	"fmt"

	"github.com/orbitbridge/depositkit/arbnetwork"
)

var ErrNoL2Network = errors.New("no L2 network configured, set NetworkFile or the [L2Network] section")

// L2NetworkDescriptor returns the network to register. A descriptor file takes precedence
// over the inline section
func (c *Config) L2NetworkDescriptor() (*arbnetwork.L2Network, error) {
	if c.NetworkFile != "" {
		network, err := arbnetwork.LoadNetworkFile(c.NetworkFile)
		if err != nil {
			return nil, fmt.Errorf("error loading L2 network from %s. Err: %w", c.NetworkFile, err)
		}
		return network, nil
	}
	if c.L2Network.IsEmpty() {
		return nil, ErrNoL2Network
	}
	network := c.L2Network
	return &network, nil
}
