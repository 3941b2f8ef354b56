package batch

import (
	"encoding/json"
	"os"

	"geomkernel/internal/query"
)

// ManifestEntry represents one query in the results manifest.
type ManifestEntry struct {
	Name  string       `json:"name"`
	Op    string       `json:"op"`
	Error string       `json:"error,omitempty"`
	Value *query.Value `json:"value,omitempty"`
}

// WriteManifest writes the results as indented JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:  r.Name,
			Op:    r.Op,
			Error: r.Error,
		}
		if r.Success {
			v := r.Value
			entries[i].Value = &v
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
