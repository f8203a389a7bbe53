package request

type CreateRoomRequest struct {
	HotelID       string `json:"hotelId" validate:"required,uuid"`
	Type          string `json:"type" validate:"required,max=100"`
	Description   string `json:"description" validate:"max=2000"`
	PricePerNight int64  `json:"pricePerNight" validate:"required,gt=0"`
	MaxGuests     int    `json:"maxGuests" validate:"required,gt=0"`
	TotalRooms    int    `json:"totalRooms" validate:"required,min=1"`
}

type UpdateRoomRequest struct {
	Type          *string `json:"type" validate:"omitempty,max=100"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
	PricePerNight *int64  `json:"pricePerNight" validate:"omitempty,gt=0"`
	MaxGuests     *int    `json:"maxGuests" validate:"omitempty,gt=0"`
	TotalRooms    *int    `json:"totalRooms" validate:"omitempty,min=1"`
}
