package batch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"geomkernel/internal/query"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Presets query.Presets
	Workers int
}

// Result holds the outcome of evaluating one query.
type Result struct {
	Name    string
	Op      string
	Success bool
	Error   string
	Value   query.Value
}

// Run evaluates all queries using a worker pool. Results keep the query order.
// Each query works on its own copies of the kernel values, so workers share
// nothing but the read-only presets.
func Run(cfg Config, queries []query.Query) []Result {
	total := len(queries)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f queries/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	queryChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queryChan {
				results[idx] = processQuery(cfg, queries[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range queries {
		queryChan <- i
	}
	close(queryChan)

	wg.Wait()
	close(done)

	return results
}

func processQuery(cfg Config, q query.Query) Result {
	v, err := cfg.Presets.Evaluate(q)
	if err != nil {
		return Result{
			Name:  q.Name,
			Op:    q.Op,
			Error: err.Error(),
		}
	}

	return Result{
		Name:    q.Name,
		Op:      q.Op,
		Success: true,
		Value:   v,
	}
}
