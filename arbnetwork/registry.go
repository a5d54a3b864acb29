package arbnetwork

import (
	"fmt"
	"sync"
)

// Registry holds the L2 networks known to the process, keyed by chain ID
type Registry struct {
	mu       sync.RWMutex
	networks map[uint64]L2Network
}

func NewRegistry() *Registry {
	return &Registry{networks: make(map[uint64]L2Network)}
}

// AddCustomNetwork registers network after validating it. A chain ID can only be registered once.
func (r *Registry) AddCustomNetwork(network L2Network) error {
	if err := network.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.networks[network.ChainID]; ok {
		return fmt.Errorf("%w: chainID %d", ErrNetworkAlreadyRegistered, network.ChainID)
	}
	network.IsCustom = true
	r.networks[network.ChainID] = network
	return nil
}

// GetL2Network returns a copy of the registered network
func (r *Registry) GetL2Network(chainID uint64) (*L2Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	network, ok := r.networks[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: chainID %d", ErrNetworkNotFound, chainID)
	}
	return &network, nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry is the process wide registry used by the CLI
func DefaultRegistry() *Registry {
	return defaultRegistry
}
