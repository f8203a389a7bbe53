package entity

import "github.com/google/uuid"

// Room is a room type inside a hotel. TotalRooms is the number of physical
// units that can be sold for the same night.
type Room struct {
	Base
	HotelID       uuid.UUID `db:"hotel_id"`
	Type          string    `db:"type"`
	Description   string    `db:"description"`
	PricePerNight int64     `db:"price_per_night"`
	MaxGuests     int       `db:"max_guests"`
	TotalRooms    int       `db:"total_rooms"`
	IsActive      bool      `db:"is_active"`
}
