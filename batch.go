// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Report collects the results of a batch in job order.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// OK reports whether every job succeeded.
func (r Report) OK() bool {
	return r.Failed() == 0
}

// Failed returns the number of failed jobs.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Succeeded returns the number of headers written.
func (r Report) Succeeded() int {
	return len(r.Results) - r.Failed()
}

// ConvertAll runs every job with a default Converter.
func ConvertAll(ctx context.Context, jobs []Job, workers int, logger *slog.Logger) Report {
	return NewConverter(logger).ConvertAll(ctx, jobs, workers)
}

// ConvertAll converts jobs on at most workers goroutines. A failing job
// is recorded and the rest keep going. Once ctx is done no further jobs
// start; the ones not started report ctx.Err().
func (c *Converter) ConvertAll(ctx context.Context, jobs []Job, workers int) Report {
	start := time.Now()
	log := c.logger()

	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Job: job, Output: job.OutputPath(), Err: err}
			continue
		}

		g.Go(func() error {
			results[i] = c.ConvertFile(ctx, job)
			return nil
		})
	}

	// jobs never return an error, failures live in results
	_ = g.Wait()

	report := Report{Results: results, Elapsed: time.Since(start)}
	log.Info("batch finished",
		"jobs", len(jobs),
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
		"workers", workers,
		"elapsed", report.Elapsed,
	)

	return report
}
