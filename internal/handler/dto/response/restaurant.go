package response

import (
	"foodies-api/internal/usecase/queries"
)

type RestaurantResponse struct {
	ID           string            `json:"id"`
	OwnerID      string            `json:"owner_id"`
	OwnerName    string            `json:"owner_name"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	CuisineType  string            `json:"cuisine_type"`
	Schedule     map[string]string `json:"schedule"`
	GlobalRating float64           `json:"global_rating"`
	ReviewCount  int32             `json:"review_count"`
	CreatedAt    int64             `json:"created_at"`
	UpdatedAt    int64             `json:"updated_at"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	return &RestaurantResponse{
		ID:           v.ID.String(),
		OwnerID:      v.OwnerID.String(),
		OwnerName:    v.OwnerName,
		Name:         v.Name,
		Address:      v.Address,
		CuisineType:  v.CuisineType,
		Schedule:     v.Schedule,
		GlobalRating: v.GlobalRating,
		ReviewCount:  v.ReviewCount,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

type RestaurantListItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	CuisineType  string  `json:"cuisine_type"`
	GlobalRating float64 `json:"global_rating"`
	CreatedAt    int64   `json:"created_at"`
}

func FromRestaurantList(items []*queries.RestaurantListItem) []*RestaurantListItemResponse {
	res := make([]*RestaurantListItemResponse, len(items))
	for i, it := range items {
		res[i] = &RestaurantListItemResponse{
			ID:           it.ID.String(),
			Name:         it.Name,
			Address:      it.Address,
			CuisineType:  it.CuisineType,
			GlobalRating: it.GlobalRating,
			CreatedAt:    it.CreatedAt.Unix(),
		}
	}
	return res
}
