package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotelId"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	PricePerNight int64     `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
	TotalRooms    int       `json:"totalRooms"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		HotelID:       room.HotelID.String(),
		Type:          room.Type,
		Description:   room.Description,
		PricePerNight: room.PricePerNight,
		MaxGuests:     room.MaxGuests,
		TotalRooms:    room.TotalRooms,
		IsActive:      room.IsActive,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}
