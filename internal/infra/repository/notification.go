package repository

import (
	"context"
	"time"

	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, reservation_id, payload, run_at, status, created_at)
VALUES ($1, $2, $3, $4, $5, 'queued', now())`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind string, reservationID uuid.UUID, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createNotificationJobSQL, uuid.New(), kind, reservationID, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
