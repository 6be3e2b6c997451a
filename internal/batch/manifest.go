package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry records one rendered output in the manifest.
type ManifestEntry struct {
	Input  string `json:"input"`
	Image  string `json:"image"`
	Frames int    `json:"frames"`
	Cubes  int    `json:"cubes"`
}

// WriteManifest writes manifest.json next to the rendered files,
// listing successful outputs only.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Input:  r.Input,
			Image:  filepath.Base(r.Output),
			Frames: r.Frames,
			Cubes:  r.Cubes,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
