package shared

import (
	"context"
	"time"

	"foodies-api/internal/domain/plan"
	"foodies-api/internal/domain/reservation"
	"foodies-api/internal/domain/restaurant"
	"foodies-api/internal/domain/review"
	"foodies-api/internal/domain/user"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Restaurants() RestaurantRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Plans() PlanRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// Minimal snapshots for command read operations

type RestaurantSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type ReservationSnapshot struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	UserID       uuid.UUID
	TableID      string
	PartySize    int
	ReservedAt   time.Time
	Status       string
}

type ReviewSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RestaurantID  uuid.UUID
	ReservationID uuid.UUID
	Quality       int
	Service       int
	Ambiance      int
	Body          string
	Upvotes       int
	Downvotes     int
}

type UserSnapshot struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     string
	IsActive bool
}

type RestaurantRepository interface {
	Create(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) error
	Delete(ctx context.Context, tx db.DBTX, restaurantID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, status reservation.Status) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
	ApplyVote(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, action review.VoteAction) error
}

type RatingStatsRepository interface {
	RecalcRestaurantRating(ctx context.Context, tx db.DBTX, restaurantID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind string, reservationID uuid.UUID, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type PlanRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *plan.Plan) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *plan.Plan) error
	Delete(ctx context.Context, tx db.DBTX, planID uuid.UUID) error
}
