package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})
	if c.OutputDir != "." || c.Workers != runtime.NumCPU() || c.Precision != 6 {
		t.Fatalf("defaults=%+v", c)
	}
}

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"query_file": "queries.json", "output_dir": "out", "workers": 3, "precision": 4}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.Resolve(Flags{})
	if c.QueryFile != filepath.Join(dir, "queries.json") || c.OutputDir != filepath.Join(dir, "out") {
		t.Fatalf("paths=%q %q", c.QueryFile, c.OutputDir)
	}
	if c.Workers != 3 || c.Precision != 4 {
		t.Fatalf("settings=%+v", c)
	}

	c, _ = Load(path)
	c.Resolve(Flags{QueryFile: "other.json", OutputDir: "/tmp/x", Workers: 8, Precision: 2})
	if c.QueryFile != "other.json" || c.OutputDir != "/tmp/x" || c.Workers != 8 || c.Precision != 2 {
		t.Fatalf("flags did not override: %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("missing file must fail")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("bad JSON must fail")
	}
}
