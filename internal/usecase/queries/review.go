package queries

import (
	"context"
	"time"

	"foodies-api/internal/domain/user"
	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	ErrReviewAccess   = errs.New("review access denied")
	ErrInvalidCursor  = errs.New("invalid cursor")
)

type ReviewView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	ReservationID  uuid.UUID `json:"reservation_id"`
	Quality        int32     `json:"quality"`
	Service        int32     `json:"service"`
	Ambiance       int32     `json:"ambiance"`
	Overall        float64   `json:"overall"`
	Body           string    `json:"body"`
	Upvotes        int32     `json:"upvotes"`
	Downvotes      int32     `json:"downvotes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Quality   int32     `json:"quality"`
	Service   int32     `json:"service"`
	Ambiance  int32     `json:"ambiance"`
	Overall   float64   `json:"overall"`
	Body      string    `json:"body"`
	Upvotes   int32     `json:"upvotes"`
	Downvotes int32     `json:"downvotes"`
	CreatedAt time.Time `json:"created_at"`
}

type RestaurantRatingStats struct {
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewFilters struct {
	MinOverall *float64
	MaxOverall *float64
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByRestaurantFirstPage(ctx context.Context, restaurantID uuid.UUID, limit int32, filters ReviewFilters) ([]*ReviewListItem, error)
	FindByRestaurantKeyset(ctx context.Context, restaurantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters ReviewFilters) ([]*ReviewListItem, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	GetRestaurantRatingStats(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingStats, error)
}

// RatingStatsCache is a read-through cache over the stats query.
type RatingStatsCache interface {
	Get(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingStats, error)
	Set(ctx context.Context, stats *RestaurantRatingStats) error
	Invalidate(ctx context.Context, restaurantID uuid.UUID) error
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID, actorID uuid.UUID, actorRole string, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetRestaurantRatingStats(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingStats, error)
}

type reviewQueriesImpl struct {
	repo  ReviewReadStore
	cache RatingStatsCache
}

func NewReviewQueries(repo ReviewReadStore, cache RatingStatsCache) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, cache: cache}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByRestaurantFirstPage(ctx, restaurantID, int32(limit+1), filters)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByRestaurantKeyset(ctx, restaurantID, lastCreatedAt, lastID, int32(limit+1), filters)
	}
	if err != nil {
		return nil, nil, err
	}
	return paginate(rows, limit)
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, actorID uuid.UUID, actorRole string, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	switch user.Role(actorRole) {
	case user.RoleAdmin, user.RoleOwner:
	case user.RoleDiner:
		if userID != actorID {
			return nil, nil, ErrReviewAccess
		}
	default:
		return nil, nil, ErrReviewAccess
	}

	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginate(rows, limit)
}

func (q *reviewQueriesImpl) GetRestaurantRatingStats(ctx context.Context, restaurantID uuid.UUID) (*RestaurantRatingStats, error) {
	if q.cache != nil {
		if stats, err := q.cache.Get(ctx, restaurantID); err == nil && stats != nil {
			return stats, nil
		}
	}

	stats, err := q.repo.GetRestaurantRatingStats(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if q.cache != nil {
		// Cache write failures never break the read path.
		_ = q.cache.Set(ctx, stats)
	}

	return stats, nil
}

func paginate(rows []*ReviewListItem, limit int) ([]*ReviewListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
