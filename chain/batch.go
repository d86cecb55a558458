package chain

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/cost"
)

// SolveBatch validates every code, solves each one at the given chain depth
// and sums their complexities. Results keep input order.
//
// With WithWorkers(n > 1) codes are dealt round-robin to up to n workers,
// each owning its own Solver and memo. ctx is checked before every code.
func SolveBatch(ctx context.Context, codes []Code, depth int, opts ...Option) (*Report, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	// Reject malformed input before any memo is touched.
	for i, c := range codes {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("code %d: %w", i+1, err)
		}
	}

	start := time.Now()
	workers := o.Workers
	if workers > len(codes) {
		workers = len(codes)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(codes))
	solvers := make([]*Solver, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		solvers[w] = newSolver(depth, o)
		go func(w int) {
			defer wg.Done()
			errs[w] = runWorker(ctx, solvers[w], codes, results, w, workers)
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	rep := &Report{Depth: depth, Results: results}
	for _, r := range results {
		if rep.Total > math.MaxInt64-r.Complexity {
			return nil, fmt.Errorf("chain: batch total: %w", cost.ErrCostOverflow)
		}
		rep.Total += r.Complexity
	}
	for _, s := range solvers {
		st := s.Stats()
		rep.Stats.Hits += st.Hits
		rep.Stats.Misses += st.Misses
		rep.Stats.Entries += st.Entries
	}

	o.Logger.Info("batch solved",
		zap.Int("codes", len(codes)),
		zap.Int("depth", depth),
		zap.Int("workers", workers),
		zap.Int64("total", rep.Total),
		zap.Uint64("memo_hits", rep.Stats.Hits),
		zap.Uint64("memo_misses", rep.Stats.Misses),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rep, nil
}

// runWorker solves codes[w], codes[w+stride], ... into results.
func runWorker(ctx context.Context, s *Solver, codes []Code, results []Result, w, stride int) error {
	for i := w; i < len(codes); i += stride {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		r, err := s.Complexity(codes[i])
		if err != nil {
			return err
		}
		results[i] = r
	}
	return nil
}
