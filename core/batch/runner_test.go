package batch_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"catalog-sync/core/batch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_IsolatesFailures(t *testing.T) {
	runner := batch.NewRunner(batch.Config{}, nil)

	results := runner.Run(context.Background(), []string{"A", "B", "C"}, func(ctx context.Context, sku string) batch.Result {
		if sku == "B" {
			return batch.Result{Error: "remote failure"}
		}
		return batch.Result{Success: true, Action: "created"}
	})

	require.Len(t, results, 3)
	assert.Equal(t, batch.Result{SKU: "A", Success: true, Action: "created"}, results[0])
	assert.Equal(t, batch.Result{SKU: "B", Error: "remote failure"}, results[1])
	assert.Equal(t, batch.Result{SKU: "C", Success: true, Action: "created"}, results[2])
}

func TestRunner_RecoversPanics(t *testing.T) {
	runner := batch.NewRunner(batch.Config{}, nil)

	results := runner.Run(context.Background(), []string{"A", "B"}, func(ctx context.Context, sku string) batch.Result {
		if sku == "A" {
			panic("boom")
		}
		return batch.Result{Success: true}
	})

	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "boom")
	assert.Equal(t, "A", results[0].SKU)
	assert.True(t, results[1].Success)
}

func TestRunner_PreservesOrderUnderConcurrency(t *testing.T) {
	runner := batch.NewRunner(batch.Config{Concurrency: 4}, nil)
	skus := []string{"S1", "S2", "S3", "S4", "S5", "S6"}

	var running, peak int32
	results := runner.Run(context.Background(), skus, func(ctx context.Context, sku string) batch.Result {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		// Earlier items finish later.
		time.Sleep(time.Duration(len(skus)-int(sku[1]-'0')) * 5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return batch.Result{Success: true, Message: sku}
	})

	for i, sku := range skus {
		assert.Equal(t, sku, results[i].SKU)
		assert.Equal(t, sku, results[i].Message)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(4))
}

func TestRunner_Delay(t *testing.T) {
	runner := batch.NewRunner(batch.Config{DelayMS: 40}, nil)

	start := time.Now()
	runner.Run(context.Background(), []string{"A", "B", "C"}, func(ctx context.Context, sku string) batch.Result {
		return batch.Result{Success: true}
	})
	elapsed := time.Since(start)

	// Two gaps, none after the last item.
	assert.GreaterOrEqual(t, elapsed, 75*time.Millisecond)
	assert.Less(t, elapsed, 300*time.Millisecond)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	results := batch.NewRunner(batch.Config{}, nil).Run(ctx, []string{"A"}, func(ctx context.Context, sku string) batch.Result {
		called = true
		return batch.Result{Success: true}
	})

	assert.False(t, called)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "canceled")
}

func TestSummarize(t *testing.T) {
	s := batch.Summarize([]batch.Result{
		{SKU: "A", Success: true},
		{SKU: "B"},
		{SKU: "C", Success: true},
		{SKU: "D", Success: true},
	})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Succeeded)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 75.0, s.SuccessRate, 0.001)
	assert.Equal(t, []string{"A", "C", "D"}, s.Successful)
	assert.Equal(t, []string{"B"}, s.Failures)

	empty := batch.Summarize(nil)
	assert.Zero(t, empty.SuccessRate)
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	err := batch.WriteCSV(&sb, []batch.Result{
		{SKU: "A", Success: true, Action: "created"},
		{SKU: "B", Error: "not found"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "sku,success,action,message,error", lines[0])
	assert.Equal(t, "A,true,created,,", lines[1])
	assert.Equal(t, "B,false,,,not found", lines[2])
}
