//go:build unit || e2e

package builder

import (
	"time"

	domreview "foodies-api/internal/domain/review"
	reqdto "foodies-api/internal/handler/dto/request"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID        uuid.UUID
	RestaurantID  uuid.UUID
	ReservationID uuid.UUID
	Quality       int
	Service       int
	Ambiance      int
	Body          string
	Now           time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:        uuid.New(),
		RestaurantID:  uuid.New(),
		ReservationID: uuid.New(),
		Quality:       5,
		Service:       4,
		Ambiance:      5,
		Body:          "The tasting menu was outstanding.",
		Now:           time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithScores(quality, service, ambiance int) *ReviewBuilder {
	r.Quality = quality
	r.Service = service
	r.Ambiance = ambiance
	return r
}

func (r *ReviewBuilder) WithBody(body string) *ReviewBuilder {
	r.Body = body
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.RestaurantID, r.ReservationID, r.Quality, r.Service, r.Ambiance, r.Body, r.Now)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		RestaurantID:  r.RestaurantID,
		ReservationID: r.ReservationID,
		Quality:       r.Quality,
		Service:       r.Service,
		Ambiance:      r.Ambiance,
		Body:          r.Body,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	overall := float64(r.Quality+r.Service+r.Ambiance) / 3.0
	return &queries.ReviewView{
		ID:             uuid.New(),
		UserID:         r.UserID,
		UserName:       "Test Diner",
		RestaurantID:   r.RestaurantID,
		RestaurantName: "Test Restaurant",
		ReservationID:  r.ReservationID,
		Quality:        int32(r.Quality),
		Service:        int32(r.Service),
		Ambiance:       int32(r.Ambiance),
		Overall:        overall,
		Body:           r.Body,
		CreatedAt:      r.Now,
		UpdatedAt:      r.Now,
	}
}
