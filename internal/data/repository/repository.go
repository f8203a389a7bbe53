package repository

import (
	"errors"

	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrCapacityExceeded is returned when every unit of a room is already held for part of the range.
	ErrCapacityExceeded = errors.New("room capacity exceeded")
	// ErrStatusConflict is returned when a conditional status change finds the booking in another state.
	ErrStatusConflict = errors.New("booking status changed concurrently")
	// ErrRoomUnavailable is returned when the room disappeared or was deactivated before a write.
	ErrRoomUnavailable = errors.New("room not available")
	// ErrDuplicate is returned on unique constraint violations.
	ErrDuplicate = errors.New("duplicate record")
)

type Repository struct {
	User    UserRepository
	Hotel   HotelRepository
	Room    RoomRepository
	Booking BookingRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Hotel:   NewHotelRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}
