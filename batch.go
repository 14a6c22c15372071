package kmeans

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Job is one independent run for FitAll.
type Job struct {
	Dataset [][]float64
	Initial [][]float64
	// Options are applied after the options passed to FitAll.
	Options []Option
}

// FitAll runs every job with its own working state and returns the results
// in job order. Up to WithConcurrency jobs run at once; each job itself is
// sequential. The first failing job cancels the others and its error is
// returned.
func FitAll(ctx context.Context, jobs []Job, opts ...Option) ([]*Result, error) {
	o := applyOptions(opts)
	results := make([]*Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := o.resources.AcquireWorker(gctx); err != nil {
				return err
			}
			defer o.resources.ReleaseWorker()

			jobOpts := append(slices.Clone(opts), WithLogger(o.logger.WithJob(i)))
			jobOpts = append(jobOpts, job.Options...)

			res, err := Fit(gctx, job.Dataset, job.Initial, jobOpts...)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
