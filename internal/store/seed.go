package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// DefaultSnapshot decodes the embedded seed records. These stand in for a real
// backend, mirroring the mock dataset the dashboard originally shipped with.
func DefaultSnapshot() (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(seedYAML, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return snap, nil
}

// NewSeeded creates a store populated with the embedded seed records.
func NewSeeded() (*Store, error) {
	snap, err := DefaultSnapshot()
	if err != nil {
		return nil, err
	}
	return NewFromSnapshot(snap), nil
}
