package response

import (
	"foodies-api/internal/usecase/queries"
)

type ReviewResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	ReservationID  string  `json:"reservation_id"`
	Quality        int32   `json:"quality"`
	Service        int32   `json:"service"`
	Ambiance       int32   `json:"ambiance"`
	Overall        float64 `json:"overall"`
	Body           string  `json:"body"`
	Upvotes        int32   `json:"upvotes"`
	Downvotes      int32   `json:"downvotes"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:             v.ID.String(),
		UserID:         v.UserID.String(),
		UserName:       v.UserName,
		RestaurantID:   v.RestaurantID.String(),
		RestaurantName: v.RestaurantName,
		ReservationID:  v.ReservationID.String(),
		Quality:        v.Quality,
		Service:        v.Service,
		Ambiance:       v.Ambiance,
		Overall:        v.Overall,
		Body:           v.Body,
		Upvotes:        v.Upvotes,
		Downvotes:      v.Downvotes,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID        string  `json:"id"`
	UserName  string  `json:"user_name"`
	Quality   int32   `json:"quality"`
	Service   int32   `json:"service"`
	Ambiance  int32   `json:"ambiance"`
	Overall   float64 `json:"overall"`
	Body      string  `json:"body"`
	Upvotes   int32   `json:"upvotes"`
	Downvotes int32   `json:"downvotes"`
	CreatedAt int64   `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:        it.ID.String(),
			UserName:  it.UserName,
			Quality:   it.Quality,
			Service:   it.Service,
			Ambiance:  it.Ambiance,
			Overall:   it.Overall,
			Body:      it.Body,
			Upvotes:   it.Upvotes,
			Downvotes: it.Downvotes,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}

type RestaurantRatingStatsResponse struct {
	RestaurantID  string  `json:"restaurant_id"`
	TotalReviews  int32   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromRestaurantRatingStats(s *queries.RestaurantRatingStats) *RestaurantRatingStatsResponse {
	return &RestaurantRatingStatsResponse{
		RestaurantID:  s.RestaurantID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		UpdatedAt:     s.UpdatedAt.Unix(),
	}
}
