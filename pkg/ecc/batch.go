package ecc

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScalarMulBatch computes coefficients[i]*points[i] for every i, spreading
// the independent multiplications over up to GOMAXPROCS goroutines.
// It returns the first error encountered, or ctx.Err() if ctx is cancelled
// before all results are ready.
func ScalarMulBatch(ctx context.Context, points []Point, coefficients []uint64) ([]Point, error) {
	if len(points) != len(coefficients) {
		return nil, fmt.Errorf("ecc: batch has %d points and %d coefficients", len(points), len(coefficients))
	}

	results := make([]Point, len(points))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := points[i].ScalarMul(coefficients[i])
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
