package queries

import (
	"context"
	"time"

	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRestaurantNotFound = errs.New("restaurant not found")

type RestaurantView struct {
	ID           uuid.UUID         `json:"id"`
	OwnerID      uuid.UUID         `json:"owner_id"`
	OwnerName    string            `json:"owner_name"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	CuisineType  string            `json:"cuisine_type"`
	Schedule     map[string]string `json:"schedule"`
	GlobalRating float64           `json:"global_rating"`
	ReviewCount  int32             `json:"review_count"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type RestaurantListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	CuisineType  string    `json:"cuisine_type"`
	GlobalRating float64   `json:"global_rating"`
	CreatedAt    time.Time `json:"created_at"`
}

type RestaurantFilters struct {
	CuisineType *string
	MinRating   *float64
}

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	FindFirstPage(ctx context.Context, limit int32, filters RestaurantFilters) ([]*RestaurantListItem, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters RestaurantFilters) ([]*RestaurantListItem, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RestaurantListItem, error)
}

type RestaurantQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	List(ctx context.Context, filters RestaurantFilters, cursor *Cursor, limit int) ([]*RestaurantListItem, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RestaurantListItem, error)
}

type restaurantQueriesImpl struct {
	repo RestaurantReadStore
}

func NewRestaurantQueries(repo RestaurantReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{repo: repo}
}

func (q *restaurantQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *restaurantQueriesImpl) List(ctx context.Context, filters RestaurantFilters, cursor *Cursor, limit int) ([]*RestaurantListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*RestaurantListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, int32(limit+1), filters)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, lastCreatedAt, lastID, int32(limit+1), filters)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *restaurantQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RestaurantListItem, error) {
	return q.repo.FindByOwner(ctx, ownerID)
}
