package colorimetry

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ComputeCRIBatch evaluates many independent light sources
// concurrently. Each source runs the full index computation; results
// are index-aligned with the input. limit caps how many sources are
// evaluated at once; zero or negative means one per available CPU.
//
// The first failing source aborts the batch: its error comes back
// wrapped with the source index, remaining sources are skipped, and no
// results are returned. Cancelling ctx has the same effect.
func ComputeCRIBatch(ctx context.Context, lights []Illuminant, limit int) ([]CRI, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := make([]CRI, len(lights))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, light := range lights {
		i, light := i, light
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cri, err := ComputeCRI(light)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			out[i] = cri
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
