package arbnetwork

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadNetworkFile reads a JSON network descriptor as exported by the Orbit deployment tooling
func LoadNetworkFile(path string) (*L2Network, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading network file %s: %w", path, err)
	}
	var network L2Network
	if err := json.Unmarshal(data, &network); err != nil {
		return nil, fmt.Errorf("parsing network file %s: %w", path, err)
	}
	return &network, nil
}
