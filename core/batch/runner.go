package batch

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Op processes one SKU. It reports failure through the Result, not a panic.
type Op func(ctx context.Context, sku string) Result

// Runner drives an Op over a list of SKUs.
type Runner struct {
	delay       time.Duration
	concurrency int
	logger      *zap.Logger
}

// NewRunner creates a runner from configuration.
func NewRunner(cfg Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{delay: cfg.Delay(), concurrency: concurrency, logger: logger}
}

// Run processes every SKU and returns results in input order. A failing or
// panicking item never stops the run. Item starts are spaced by the
// configured delay; nothing waits after the last item.
func (r *Runner) Run(ctx context.Context, skus []string, op Op) []Result {
	results := make([]Result, len(skus))

	var limiter *rate.Limiter
	if r.delay > 0 {
		limiter = rate.NewLimiter(rate.Every(r.delay), 1)
	}

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, sku := range skus {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				results[i] = Result{SKU: sku, Error: err.Error()}
				continue
			}
		}
		r.logger.Debug("Processing batch item",
			zap.Int("index", i+1),
			zap.Int("total", len(skus)),
			zap.String("sku", sku),
		)
		g.Go(func() error {
			results[i] = r.runOne(ctx, sku, op)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) runOne(ctx context.Context, sku string, op Op) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Batch item panicked", zap.String("sku", sku), zap.Any("panic", p))
			res = Result{SKU: sku, Error: fmt.Sprintf("unexpected error: %v", p)}
		}
		label := "failure"
		if res.Success {
			label = "success"
		}
		metrics.BatchItems.WithLabelValues(label).Inc()
	}()

	if err := ctx.Err(); err != nil {
		return Result{SKU: sku, Error: err.Error()}
	}

	res = op(ctx, sku)
	res.SKU = sku
	return res
}
