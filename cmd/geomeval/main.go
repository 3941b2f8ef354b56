package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"geomkernel/internal/batch"
	"geomkernel/internal/config"
	"geomkernel/internal/geom"
	"geomkernel/internal/query"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	queryFile := flag.String("queries", "", "Path to the query file")
	outputDir := flag.String("output", "", "Directory for results.json (default: .)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	precision := flag.Int("precision", 0, "Decimal places in printed values (default: 6)")
	only := flag.String("only", "", "Evaluate only the query with this name")
	lang := flag.String("lang", "en", "Locale for printed counts")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		QueryFile: *queryFile,
		OutputDir: *outputDir,
		Workers:   *workers,
		Precision: *precision,
	})

	if cfg.QueryFile == "" {
		fmt.Fprintln(os.Stderr, "Error: no query file. Use -queries flag or config.json.")
		os.Exit(1)
	}

	file, err := query.Load(cfg.QueryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading queries: %v\n", err)
		os.Exit(1)
	}

	queries := file.Queries
	if *only != "" {
		var filtered []query.Query
		for _, q := range queries {
			if q.Name == *only {
				filtered = append(filtered, q)
			}
		}
		queries = filtered
	}

	if len(queries) == 0 {
		fmt.Println("No queries to evaluate.")
		os.Exit(0)
	}

	p := message.NewPrinter(language.Make(*lang))

	p.Printf("Geometry kernel query evaluation (tolerance %g)\n", geom.Tolerance)
	p.Printf("Queries: %d, Presets: %d, Workers: %d\n", len(queries), len(file.Presets), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Presets: file.Presets,
		Workers: cfg.Workers,
	}, queries)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.3fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s (%s): %s\n", r.Name, r.Op, formatValue(r.Value, cfg.Precision))
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	p.Printf("Evaluated: %d/%d\n", success, len(queries))

	if len(errors) > 0 {
		p.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "results.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: results write failed: %v\n", err)
	} else {
		fmt.Printf("Results: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func formatValue(v query.Value, prec int) string {
	num := func(f float64) string {
		return fmt.Sprintf("%.*f", prec, f)
	}
	vec := func(p geom.Vec3) string {
		return "(" + num(p[0]) + ", " + num(p[1]) + ", " + num(p[2]) + ")"
	}

	switch {
	case v.Vector != nil:
		return vec(*v.Vector)
	case v.Scalar != nil:
		return num(*v.Scalar)
	case v.Bool != nil:
		return fmt.Sprint(*v.Bool)
	case v.Frame != nil:
		f := v.Frame
		return "x=" + vec(f.XAxis) + " y=" + vec(f.YAxis) + " z=" + vec(f.ZAxis) + " origin=" + vec(f.Origin)
	case v.Matrix != nil:
		rows := make([]string, 4)
		for r := range rows {
			cells := make([]string, 4)
			for c := range cells {
				cells[c] = num(v.Matrix[r*4+c])
			}
			rows[r] = strings.Join(cells, " ")
		}
		return "[" + strings.Join(rows, "; ") + "]"
	}
	return "-"
}
