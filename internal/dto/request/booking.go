package request

// CreateBookingRequest dates are YYYY-MM-DD (RFC 3339 is accepted and truncated to the UTC day).
type CreateBookingRequest struct {
	RoomID   string `json:"roomId" validate:"required,uuid"`
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
}

type AvailabilityRequest struct {
	RoomID   string `validate:"required,uuid"`
	CheckIn  string `validate:"required"`
	CheckOut string `validate:"required"`
}

type BookingListRequest struct {
	PaginatedRequest
	Status string `validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}
