package main

import (
	"testing"

	"geomkernel/internal/batch"
	"geomkernel/internal/geom"
	"geomkernel/internal/query"
)

func TestFormatValue(t *testing.T) {
	v := geom.V3(1, 2.5, -3)
	f := 14.142135623730951
	b := true
	m := geom.FromPoint(geom.V3(1, 2, 3))
	cases := []struct {
		in   query.Value
		prec int
		want string
	}{
		{query.Value{Vector: &v}, 2, "(1.00, 2.50, -3.00)"},
		{query.Value{Scalar: &f}, 3, "14.142"},
		{query.Value{Bool: &b}, 6, "true"},
		{query.Value{Matrix: &m}, 0, "[1 0 0 1; 0 1 0 2; 0 0 1 3; 0 0 0 1]"},
		{query.Value{Frame: &query.Frame{XAxis: v}}, 0, "x=(1, 2, -3) y=(0, 0, 0) z=(0, 0, 0) origin=(0, 0, 0)"},
		{query.Value{}, 6, "-"},
	}
	for _, c := range cases {
		if got := formatValue(c.in, c.prec); got != c.want {
			t.Errorf("formatValue=%q want %q", got, c.want)
		}
	}
}

func TestSampleQueries(t *testing.T) {
	file, err := query.Load("testdata/queries.json")
	if err != nil {
		t.Fatal(err)
	}
	results := batch.Run(batch.Config{Presets: file.Presets, Workers: 2}, file.Queries)
	if len(results) != len(file.Queries) {
		t.Fatalf("results=%d queries=%d", len(results), len(file.Queries))
	}
	for _, r := range results {
		if !r.Success {
			t.Errorf("%s: %s", r.Name, r.Error)
		}
	}

	placed := results[4].Value.Vector
	if placed == nil || !placed.Equal(geom.V3(0, 1, 10)) {
		t.Fatalf("placed=%v", placed)
	}
	if b := results[3].Value.Bool; b == nil || !*b {
		t.Fatalf("touching=%v", b)
	}
}
