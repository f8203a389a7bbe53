package adaptor

import (
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Hotel   *HotelHandler
	Room    *RoomHandler
	Booking *BookingHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config, log),
		User:    NewUserHandler(service.User, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, service.Availability, log),
		Payment: NewPaymentHandler(service.Payment, log),
	}
}
