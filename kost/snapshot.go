package kost

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the serialized form of the whole data set, used by the
// CLI to load and save a working session as a JSON file.
type Snapshot struct {
	Tenants             []Tenant             `json:"tenants"`
	Rooms               []Room               `json:"rooms"`
	Payments            []Payment            `json:"payments"`
	MaintenanceRequests []MaintenanceRequest `json:"maintenanceRequests"`
}

// ReadSnapshotFile loads a snapshot from a JSON file.
func ReadSnapshotFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot %s: %v", path, err)
	}
	return snap, nil
}

// WriteSnapshotFile writes a snapshot as indented JSON.
func WriteSnapshotFile(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %v", path, err)
	}
	return nil
}
