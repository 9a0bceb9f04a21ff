package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodies-api/internal/domain/reservation"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/pkg/config"
)

// Worker polls notification_jobs and delivers due mails. Each job gets
// exactly one attempt; the outcome is recorded and never retried.
type Worker struct {
	store  JobStore
	mailer Mailer
	clock  clock.Clock
	cfg    config.NotifyConfig
	logger *slog.Logger
}

func NewWorker(store JobStore, mailer Mailer, clk clock.Clock, cfg config.NotifyConfig, logger *slog.Logger) *Worker {
	return &Worker{
		store:  store,
		mailer: mailer,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}
}

// Run blocks until ctx is cancelled, sweeping at the configured interval.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				w.logger.Error("notification sweep failed", "error", err)
			}
		}
	}
}

// Sweep claims every due job and processes each in turn. Per-job failures
// are recorded on the job row, not returned.
func (w *Worker) Sweep(ctx context.Context) error {
	now := w.clock.Now()
	jobs, err := w.store.ClaimDue(ctx, now, w.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		w.process(ctx, job)
	}
	return nil
}

func (w *Worker) process(ctx context.Context, job Job) {
	var payload ReservationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		w.markFailed(ctx, job, "invalid payload: "+err.Error())
		return
	}

	if job.Kind == KindReviewRequest {
		skip, reason, err := w.shouldSkipReviewRequest(ctx, payload)
		if err != nil {
			w.markFailed(ctx, job, err.Error())
			return
		}
		if skip {
			w.mark(ctx, job, StatusSkipped, nil)
			w.logger.Info("notification job skipped",
				"job_id", job.ID, "kind", job.Kind, "reason", reason)
			return
		}
	}

	var sendErr error
	switch job.Kind {
	case KindReservationConfirmation:
		sendErr = w.mailer.SendReservationConfirmation(payload)
	case KindReviewRequest:
		sendErr = w.mailer.SendReviewRequest(payload)
	default:
		w.markFailed(ctx, job, "unknown job kind: "+job.Kind)
		return
	}

	if sendErr != nil {
		w.markFailed(ctx, job, sendErr.Error())
		return
	}
	w.mark(ctx, job, StatusSent, nil)
}

// shouldSkipReviewRequest reloads the reservation and compares its date
// with the snapshot taken at scheduling time.
func (w *Worker) shouldSkipReviewRequest(ctx context.Context, payload ReservationPayload) (bool, string, error) {
	state, err := w.store.ReservationState(ctx, payload.ReservationID)
	if err != nil {
		return false, "", err
	}
	if state == nil {
		return true, "reservation no longer exists", nil
	}

	reservedAt := reservation.ReconstructReservedAt(state.ReservedAt)
	if !reservedAt.SameCalendarDay(payload.ReservedAt, time.Local) {
		return true, "reservation moved to another day", nil
	}
	return false, "", nil
}

// Purge removes terminal jobs older than the configured retention. Wired
// to the daily cron schedule at bootstrap.
func (w *Worker) Purge(ctx context.Context) error {
	cutoff := w.clock.Now().Add(-w.cfg.PurgeRetention)
	purged, err := w.store.PurgeFinished(ctx, cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		w.logger.Info("purged notification jobs", "count", purged)
	}
	return nil
}

func (w *Worker) markFailed(ctx context.Context, job Job, reason string) {
	w.mark(ctx, job, StatusFailed, &reason)
	w.logger.Warn("notification job failed",
		"job_id", job.ID, "kind", job.Kind, "error", reason)
}

func (w *Worker) mark(ctx context.Context, job Job, status string, lastError *string) {
	if err := w.store.MarkStatus(ctx, job.ID, status, lastError, w.clock.Now()); err != nil {
		w.logger.Error("failed to record notification job outcome",
			"job_id", job.ID, "status", status, "error", err)
	}
}
