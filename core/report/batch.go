// ABOUTME: Batch runner that requests several reports with bounded concurrency
// ABOUTME: Each topic gets its own single request; one failure does not stop the rest

package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"pakgov-intel/core/domain"
	"pakgov-intel/core/interfaces"
)

// DefaultBatchConcurrency is used when no limit is configured
const DefaultBatchConcurrency = 2

// BatchResult is the outcome for one topic of a batch
type BatchResult struct {
	Topic  string
	Result *domain.SearchResult
	Err    error
}

// Batch fans topics out to a ReportRequester
type Batch struct {
	requester   interfaces.ReportRequester
	logger      interfaces.Logger
	concurrency int
}

// BatchOption configures a Batch
type BatchOption func(*Batch)

// WithBatchConcurrency caps the number of requests in flight. Values below
// one are ignored.
func WithBatchConcurrency(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets the logger used for batch progress
func WithBatchLogger(logger interfaces.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// NewBatch creates a batch runner over requester
func NewBatch(requester interfaces.ReportRequester, opts ...BatchOption) *Batch {
	b := &Batch{
		requester:   requester,
		concurrency: DefaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run requests a report for every topic and returns the outcomes in input
// order. Per-topic failures are recorded in the result. The returned error
// is non-nil only when ctx was cancelled before every topic started.
func (b *Batch) Run(ctx context.Context, topics []string) ([]BatchResult, error) {
	results := make([]BatchResult, len(topics))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, topic := range topics {
		results[i].Topic = topic
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}

			result, err := b.requester.RequestReport(gctx, topic)
			results[i].Result = result
			results[i].Err = err
			if err != nil {
				b.warn("Batch topic failed", map[string]interface{}{
					"index": i,
					"error": err.Error(),
				})
			}
			return nil
		})
	}

	err := g.Wait()

	b.info("Batch complete", map[string]interface{}{
		"topics":      len(topics),
		"failed":      countFailed(results),
		"concurrency": b.concurrency,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return results, err
}

func countFailed(results []BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func (b *Batch) info(msg string, fields map[string]interface{}) {
	if b.logger != nil {
		b.logger.Info(msg, fields)
	}
}

func (b *Batch) warn(msg string, fields map[string]interface{}) {
	if b.logger != nil {
		b.logger.Warn(msg, fields)
	}
}
