package response

import (
	"time"

	"foodies-api/internal/usecase/queries"
)

type ReservationResponse struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	TableID        string `json:"table_id"`
	PartySize      int32  `json:"party_size"`
	ReservedAt     string `json:"reserved_at"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             v.ID.String(),
		RestaurantID:   v.RestaurantID.String(),
		RestaurantName: v.RestaurantName,
		UserID:         v.UserID.String(),
		UserName:       v.UserName,
		TableID:        v.TableID,
		PartySize:      v.PartySize,
		ReservedAt:     v.ReservedAt.Format(time.RFC3339),
		Status:         v.Status,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

type ReservationListItemResponse struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	TableID        string `json:"table_id"`
	PartySize      int32  `json:"party_size"`
	ReservedAt     string `json:"reserved_at"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListItemResponse {
	res := make([]*ReservationListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReservationListItemResponse{
			ID:             it.ID.String(),
			RestaurantID:   it.RestaurantID.String(),
			RestaurantName: it.RestaurantName,
			TableID:        it.TableID,
			PartySize:      it.PartySize,
			ReservedAt:     it.ReservedAt.Format(time.RFC3339),
			Status:         it.Status,
			CreatedAt:      it.CreatedAt.Unix(),
		}
	}
	return res
}
