package query

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a query file. Unnamed queries are named after their position.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("query: read %s: %w", path, err)
	}
	f, err := Parse(raw)
	if err != nil {
		return File{}, fmt.Errorf("query: parse %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a query file from JSON.
func Parse(raw []byte) (File, error) {
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return File{}, err
	}
	for i := range f.Queries {
		if f.Queries[i].Name == "" {
			f.Queries[i].Name = fmt.Sprintf("query-%d", i+1)
		}
	}
	return f, nil
}
