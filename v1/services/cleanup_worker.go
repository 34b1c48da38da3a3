package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/develeep/llowa-eng/v1/models"
	"github.com/develeep/llowa-eng/v1/store"
)

// CleanupWorker periodically removes listings, responses and their contact
// rows once they are older than the retention window. Creation is the only
// write path in the API, so this sweep is the sole deletion mechanism.
type CleanupWorker struct {
	store     store.RecordStore
	interval  time.Duration
	retention time.Duration
}

// NewCleanupWorker creates a cleanup worker with the given sweep interval
// and retention window
func NewCleanupWorker(st store.RecordStore, interval, retention time.Duration) *CleanupWorker {
	return &CleanupWorker{
		store:     st,
		interval:  interval,
		retention: retention,
	}
}

// Start runs the worker until the context is cancelled
func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Cleanup worker started", "interval", w.interval, "retention", w.retention)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep deletes rows created before the retention cutoff. Response tables go
// first, then the listings, then contacts; a contact is always at least as
// old as the row referencing it, so contacts past the cutoff have no live
// referrers left by the time they are removed.
func (w *CleanupWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention)

	targets := []struct {
		table string
		model interface{}
	}{
		{"applications", &models.Application{}},
		{"local_applications", &models.LocalApplication{}},
		{"invitations", &models.Invitation{}},
		{"visitor_requests", &models.VisitorRequest{}},
		{"contacts", &models.Contact{}},
	}

	for _, target := range targets {
		deleted, err := w.store.DeleteOlderThan(ctx, target.model, cutoff)
		if err != nil {
			slog.Error("Retention sweep failed", "table", target.table, "error", err)
			continue
		}
		if deleted > 0 {
			slog.Info("Retention sweep removed rows", "table", target.table, "deleted", deleted)
		}
	}
}
