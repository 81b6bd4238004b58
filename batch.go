package curve3

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// PairResult is the nearest pair between the curves at indices I and J of
// the slice passed to [NearestPairs].
type PairResult struct {
	I, J int
	NearestPair
}

// NearestPairs runs [FindNearestPair] for every pair of handles (i, j) with
// i < j, using up to workers goroutines. If workers is not positive,
// runtime.GOMAXPROCS(0) is used.
//
// Results are ordered by i, then j. The first error stops the remaining
// work and is returned, as is the context's error if ctx is canceled before
// all pairs were solved.
func NearestPairs(ctx context.Context, handles []Handle, opts NearestOptions, workers int) ([]PairResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(handles)
	results := make([]PairResult, 0, n*(n-1)/2)
	for i := range n {
		for j := i + 1; j < n; j++ {
			results = append(results, PairResult{I: i, J: j})
		}
	}

	log := Logger()
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range results {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := &results[k]
			pair, err := FindNearestPair(handles[r.I], handles[r.J], opts)
			if err != nil {
				return fmt.Errorf("pair (%d, %d): %w", r.I, r.J, err)
			}
			r.NearestPair = pair
			log.DebugContext(gctx, "solved pair",
				"i", r.I, "j", r.J,
				"t1", pair.T1, "t2", pair.T2,
				"distance", pair.Distance)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("solved curve pairs",
		"curves", n,
		"pairs", len(results),
		"workers", workers,
		"elapsed", time.Since(start))
	return results, nil
}

// ClosestPair returns the result with the smallest distance. Ties go to the
// earlier result. It reports false if results is empty.
func ClosestPair(results []PairResult) (PairResult, bool) {
	if len(results) == 0 {
		return PairResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best, true
}
