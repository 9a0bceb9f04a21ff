package notifier

import (
	"context"
	"time"

	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobStore is the worker's view of the notification_jobs table. Claiming
// stamps attempted_at so a crashed sweep never redelivers.
type JobStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]Job, error)
	MarkStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, attemptedAt time.Time) error
	PurgeFinished(ctx context.Context, olderThan time.Time) (int64, error)
	ReservationState(ctx context.Context, reservationID uuid.UUID) (*ReservationState, error)
}

// ReservationState is the live row the same-day guard checks against
// the payload snapshot.
type ReservationState struct {
	Status     string
	ReservedAt time.Time
}

const claimDueJobsSQL = `
UPDATE notification_jobs
SET attempted_at = $1, updated_at = now()
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1 AND attempted_at IS NULL
    ORDER BY run_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, reservation_id, payload, run_at, status, last_error, attempted_at, created_at`

const markJobStatusSQL = `
UPDATE notification_jobs
SET status = $2, last_error = $3, attempted_at = $4, updated_at = now()
WHERE id = $1`

const purgeFinishedJobsSQL = `
DELETE FROM notification_jobs
WHERE status IN ('sent', 'failed', 'skipped') AND created_at < $1`

const reservationStateSQL = `
SELECT status, reserved_at FROM reservations WHERE id = $1`

type PgJobStore struct {
	pool *pgxpool.Pool
}

func NewPgJobStore(pool *pgxpool.Pool) *PgJobStore {
	return &PgJobStore{pool: pool}
}

func (s *PgJobStore) ClaimDue(ctx context.Context, now time.Time, limit int) ([]Job, error) {
	rows, err := s.pool.Query(ctx, claimDueJobsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due notification jobs", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var (
			j           Job
			lastErr     pgtype.Text
			attemptedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&j.ID, &j.Kind, &j.ReservationID, &j.Payload,
			&j.RunAt, &j.Status, &lastErr, &attemptedAt, &j.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		j.LastError = pgconv.StringPtrFromPgtype(lastErr)
		j.AttemptedAt = pgconv.TimePtrFromPgtype(attemptedAt)
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", err)
	}
	return jobs, nil
}

func (s *PgJobStore) MarkStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, attemptedAt time.Time) error {
	tag, err := s.pool.Exec(ctx, markJobStatusSQL, jobID, status, lastError, attemptedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *PgJobStore) PurgeFinished(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, purgeFinishedJobsSQL, olderThan)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge notification jobs", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PgJobStore) ReservationState(ctx context.Context, reservationID uuid.UUID) (*ReservationState, error) {
	var st ReservationState
	err := s.pool.QueryRow(ctx, reservationStateSQL, reservationID).Scan(&st.Status, &st.ReservedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load reservation state", err)
	}
	return &st, nil
}
