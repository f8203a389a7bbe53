package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Amenities   []string       `json:"amenities"`
	Images      []string       `json:"images"`
	IsActive    bool           `json:"isActive"`
	Rooms       []RoomResponse `json:"rooms,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// HotelSummary is the slice of a hotel embedded in bookings.
type HotelSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:          hotel.ID.String(),
		Name:        hotel.Name,
		Location:    hotel.Location,
		Description: hotel.Description,
		Amenities:   orEmpty(hotel.Amenities),
		Images:      orEmpty(hotel.Images),
		IsActive:    hotel.IsActive,
		CreatedAt:   hotel.CreatedAt,
		UpdatedAt:   hotel.UpdatedAt,
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
