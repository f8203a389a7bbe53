package response

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"
)

type AvailabilityResponse struct {
	RoomID         string `json:"roomId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	TotalRooms     int    `json:"totalRooms"`
	BookedRooms    int    `json:"bookedRooms"`
	AvailableRooms int    `json:"availableRooms"`
	IsAvailable    bool   `json:"isAvailable"`
}

type BookingResponse struct {
	ID         string               `json:"id"`
	Reference  string               `json:"reference"`
	UserID     string               `json:"userId"`
	RoomID     string               `json:"roomId"`
	CheckIn    string               `json:"checkIn"`
	CheckOut   string               `json:"checkOut"`
	Nights     int                  `json:"nights"`
	TotalPrice int64                `json:"totalPrice"`
	Currency   string               `json:"currency"`
	Status     entity.BookingStatus `json:"status"`
	Room       *BookingRoomSummary  `json:"room,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

type BookingRoomSummary struct {
	ID    string        `json:"id"`
	Type  string        `json:"type"`
	Hotel *HotelSummary `json:"hotel,omitempty"`
}

type BookingDetailResponse struct {
	BookingResponse
	Payments []PaymentResponse `json:"payments"`
}

func BookingToResponse(booking *entity.Booking, currency string) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		Reference:  booking.Reference,
		UserID:     booking.UserID.String(),
		RoomID:     booking.RoomID.String(),
		CheckIn:    utils.FormatDate(booking.CheckIn),
		CheckOut:   utils.FormatDate(booking.CheckOut),
		Nights:     entity.Nights(booking.CheckIn, booking.CheckOut),
		TotalPrice: booking.TotalPrice,
		Currency:   currency,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}
}

func RoomSummary(room *entity.Room, hotel *entity.Hotel) *BookingRoomSummary {
	if room == nil {
		return nil
	}
	summary := &BookingRoomSummary{
		ID:   room.ID.String(),
		Type: room.Type,
	}
	if hotel != nil {
		summary.Hotel = &HotelSummary{
			ID:       hotel.ID.String(),
			Name:     hotel.Name,
			Location: hotel.Location,
		}
	}
	return summary
}
