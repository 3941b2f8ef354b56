package query

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"geomkernel/internal/geom"
)

const sampleFile = `{
  "presets": {
    "lift": {"kind": "translation", "vector": [0, 0, 10]},
    "lift-twice": {"kind": "product", "product": [{"preset": "lift"}, {"preset": "lift"}]}
  },
  "queries": [
    {"name": "foot", "op": "project_to_plane", "point": [10, 10, 10], "plane": [[0, 0, 0], [0, 0, 1]]},
    {"op": "transform", "point": [1, 2, 3], "transform": {"preset": "lift-twice"}}
  ]
}`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(f.Presets) != 2 || len(f.Queries) != 2 {
		t.Fatalf("presets=%d queries=%d", len(f.Presets), len(f.Queries))
	}
	if f.Queries[0].Name != "foot" || f.Queries[1].Name != "query-2" {
		t.Fatalf("names=%q %q", f.Queries[0].Name, f.Queries[1].Name)
	}
	q := f.Queries[0]
	if q.Plane == nil || q.Plane.Normal()[2] != 1 || *q.Point != geom.V3(10, 10, 10) {
		t.Fatalf("operands=%+v", q)
	}

	if _, err := Parse([]byte(`{"queries": [`)); err == nil {
		t.Fatalf("truncated JSON must fail")
	}
}

func TestParseRejectsWrongLengths(t *testing.T) {
	cases := []string{
		`{"queries": [{"op": "distance", "point": [1, 2], "target": [1, 2, 3]}]}`,
		`{"queries": [{"op": "distance", "point": [1, 2, 3], "target": [1, 2, 3, 4]}]}`,
		`{"queries": [{"op": "on_plane", "point": [0, 0, 5], "plane": [[0, 0, 0]]}]}`,
		`{"queries": [{"op": "on_line", "point": [0, 0, 5], "line": [[0, 0, 0], [0, 0, 1], [1, 1, 1]]}]}`,
		`{"queries": [{"op": "on_line", "point": [0, 0, 5], "line": [[0, 0, 0], [0, 1]]}]}`,
		`{"presets": {"up": {"kind": "translation", "vector": []}}}`,
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c)); !errors.Is(err, geom.ErrComponentCount) {
			t.Errorf("parse %s: err=%v", c, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.json")
	if err := os.WriteFile(path, []byte(sampleFile), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v, err := f.Presets.Evaluate(f.Queries[1])
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if *v.Vector != geom.V3(1, 2, 23) {
		t.Fatalf("transform=%v", *v.Vector)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file must fail")
	}
}
