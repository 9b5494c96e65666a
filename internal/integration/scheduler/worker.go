// Package scheduler runs background jobs on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gkeele21/family-budget/internal/application/usecase/recurring"
)

// Worker materializes due recurring transactions on a polling loop.
type Worker struct {
	materializeUseCase *recurring.MaterializeDueUseCase
	pollInterval       time.Duration
}

// WorkerConfig holds configuration for the recurring worker.
type WorkerConfig struct {
	PollInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 1 * time.Hour,
	}
}

// NewWorker creates a new recurring transaction worker.
func NewWorker(materializeUseCase *recurring.MaterializeDueUseCase, config WorkerConfig) *Worker {
	return &Worker{
		materializeUseCase: materializeUseCase,
		pollInterval:       config.PollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Recurring transaction worker started",
		"poll_interval", w.pollInterval,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker
	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Recurring transaction worker shutting down")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	output, err := w.materializeUseCase.Execute(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("Failed to materialize due recurring transactions", "error", err)
		return
	}
	if output.Materialized > 0 {
		slog.Info("Materialized recurring transactions", "count", output.Materialized)
	}
}

// RunNow runs one materializer pass immediately (useful for testing).
func (w *Worker) RunNow(ctx context.Context) {
	w.runOnce(ctx)
}
