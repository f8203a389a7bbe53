package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	// CheckAvailability reports how many units of a room are free for [checkIn, checkOut).
	// It reserves nothing.
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	roomID, err := parseID(req.RoomID, "room ID")
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("find room %s: %w", req.RoomID, err)
	}
	if room == nil || !room.IsActive {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, req.RoomID)
	}

	booked, err := s.repo.Booking.CountOverlapping(ctx, roomID, checkIn, checkOut, entity.ActiveBookingStatuses)
	if err != nil {
		s.log.Error("Failed to count overlapping bookings", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("count overlapping bookings: %w", err)
	}

	// Not clamped: an over-committed room reports a negative figure.
	available := room.TotalRooms - booked

	return &response.AvailabilityResponse{
		RoomID:         room.ID.String(),
		CheckIn:        utils.FormatDate(checkIn),
		CheckOut:       utils.FormatDate(checkOut),
		TotalRooms:     room.TotalRooms,
		BookedRooms:    booked,
		AvailableRooms: available,
		IsAvailable:    available > 0,
	}, nil
}

const maxStayNights = 365

// parseStay turns two date strings into a non-empty [checkIn, checkOut) range of UTC days.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkIn: %s", ErrValidation, err.Error())
	}

	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkOut: %s", ErrValidation, err.Error())
	}

	if !in.Before(out) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkOut must be after checkIn", ErrValidation)
	}

	if nights := entity.Nights(in, out); nights > maxStayNights {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: stay of %d nights exceeds the maximum of %d", ErrValidation, nights, maxStayNights)
	}

	return in, out, nil
}
