package notifier

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindReservationConfirmation = "reservation_confirmation"
	KindReviewRequest           = "review_request"
)

const (
	StatusQueued  = "queued"
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Job is one queued delivery. Each job gets a single attempt; a failed
// send is recorded and never retried.
type Job struct {
	ID            uuid.UUID
	Kind          string
	ReservationID uuid.UUID
	Payload       []byte
	RunAt         time.Time
	Status        string
	LastError     *string
	AttemptedAt   *time.Time
	CreatedAt     time.Time
}

// ReservationPayload is the snapshot taken when the job was enqueued.
// The worker re-reads the live reservation before sending; the snapshot
// carries everything the mail template needs.
type ReservationPayload struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	TableID        string    `json:"table_id"`
	PartySize      int       `json:"party_size"`
	ReservedAt     time.Time `json:"reserved_at"`
}
