package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the query file location and evaluation settings.
type Config struct {
	// Paths
	QueryFile string `json:"query_file"`
	OutputDir string `json:"output_dir"`

	// Evaluation settings
	Workers   int `json:"workers"`
	Precision int `json:"precision"` // decimal places in the printed summary

	// dir is the directory of the loaded config file; relative paths resolve against it.
	dir string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.QueryFile != "" {
		c.QueryFile = flags.QueryFile
	} else if c.QueryFile != "" && c.dir != "" && !filepath.IsAbs(c.QueryFile) {
		c.QueryFile = filepath.Join(c.dir, c.QueryFile)
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	} else if c.OutputDir != "" && c.dir != "" && !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.dir, c.OutputDir)
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Precision > 0 {
		c.Precision = flags.Precision
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Precision <= 0 {
		c.Precision = 6
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	QueryFile string
	OutputDir string
	Workers   int
	Precision int
}
