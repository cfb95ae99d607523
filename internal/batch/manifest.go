package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry describes one rendered sphere in the output manifest.
type ManifestEntry struct {
	Radius    float64 `json:"radius"`
	Frequency int     `json:"frequency"`
	Vertices  int     `json:"vertices"`
	Faces     int     `json:"faces"`
	Image     string  `json:"image"`
}

// WriteManifest writes manifest.json for all successful results.
func WriteManifest(path string, results []Result) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Radius:    r.Radius,
			Frequency: r.Frequency,
			Vertices:  r.Vertices,
			Faces:     r.Faces,
			Image:     r.Image,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest: %w", err)
	}
	return nil
}
