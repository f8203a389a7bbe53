package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// User endpoints
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string, actorID uuid.UUID, isAdmin bool) (*response.BookingDetailResponse, error)
	// CancelBooking is open to the owner and to admins. Other users get ErrNotFound.
	CancelBooking(ctx context.Context, bookingID string, actorID uuid.UUID, isAdmin bool) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	AdminConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notify   *dispatcher
	currency string
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, notify *dispatcher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notify:   notify,
		currency: config.Payment.Currency,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate request
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
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

	// 2. Room must exist and be sellable
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("find room %s: %w", req.RoomID, err)
	}
	if room == nil || !room.IsActive {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, req.RoomID)
	}

	// 3. Freeze the price
	nights := entity.Nights(checkIn, checkOut)
	if room.PricePerNight > math.MaxInt64/int64(nights) {
		return nil, fmt.Errorf("%w: total price for %d nights overflows", ErrValidation, nights)
	}
	now := time.Now().UTC()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:  utils.GenerateBookingReference(now),
		UserID:     userID,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: int64(nights) * room.PricePerNight,
		Status:     entity.BookingStatusPending,
	}

	// 4. Capacity check and insert happen atomically in the repository
	err = s.repo.Booking.CreateWithinCapacity(ctx, booking)
	switch {
	case errors.Is(err, repository.ErrCapacityExceeded):
		s.log.Info("Booking rejected, room full",
			zap.String("room_id", req.RoomID),
			zap.String("check_in", req.CheckIn),
			zap.String("check_out", req.CheckOut),
		)
		return nil, fmt.Errorf("%w: room %s", ErrCapacity, req.RoomID)
	case errors.Is(err, repository.ErrRoomUnavailable):
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, req.RoomID)
	case err != nil:
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("user_id", userID.String()),
		zap.Int("nights", nights),
		zap.Int64("total_price", booking.TotalPrice),
	)

	s.notify.BookingReceived(*booking)

	resp := s.toResponse(ctx, booking, newBookingLookup(s.repo))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.PageNumber(), limit, total), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var status *entity.BookingStatus
	if req.Status != "" {
		st := entity.BookingStatus(req.Status)
		status = &st
	}

	limit := req.Limit()
	bookings, err := s.repo.Booking.FindAll(ctx, status, limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get all bookings", zap.Error(err))
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.PageNumber(), limit, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string, actorID uuid.UUID, isAdmin bool) (*response.BookingDetailResponse, error) {
	booking, err := s.findVisible(ctx, bookingID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to get booking payments", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking payments: %w", err)
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: s.toResponse(ctx, booking, newBookingLookup(s.repo)),
		Payments:        make([]response.PaymentResponse, 0, len(payments)),
	}
	for _, payment := range payments {
		detail.Payments = append(detail.Payments, response.PaymentToResponse(payment, s.currency))
	}

	return detail, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, actorID uuid.UUID, isAdmin bool) (*response.BookingResponse, error) {
	booking, err := s.findVisible(ctx, bookingID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("%w: booking %s is already cancelled", ErrInvalidState, bookingID)
	}

	// Compare-and-set: a payment landing first still leaves a cancellable CONFIRMED
	// booking, while a cancel landing first makes the payment fail its PENDING check.
	cancelled, err := s.repo.Booking.TransitionStatus(ctx, booking.ID, entity.ActiveBookingStatuses, entity.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking %s is already cancelled", ErrInvalidState, bookingID)
		}
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if cancelled == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("actor_id", actorID.String()),
		zap.Bool("admin", isAdmin),
		zap.String("previous_status", string(booking.Status)),
	)

	s.notify.BookingCancelled(*cancelled)

	resp := s.toResponse(ctx, cancelled, newBookingLookup(s.repo))
	return &resp, nil
}

func (s *bookingService) AdminConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID(bookingID, "booking ID")
	if err != nil {
		return nil, err
	}

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: only PENDING bookings can be confirmed, booking %s is %s", ErrInvalidState, bookingID, booking.Status)
	}

	confirmed, err := s.repo.Booking.TransitionStatus(ctx, id, []entity.BookingStatus{entity.BookingStatusPending}, entity.BookingStatusConfirmed)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking %s is no longer PENDING", ErrInvalidState, bookingID)
		}
		s.log.Error("Failed to confirm booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	if confirmed == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	s.log.Info("Booking confirmed by admin", zap.String("booking_id", bookingID))

	resp := s.toResponse(ctx, confirmed, newBookingLookup(s.repo))
	return &resp, nil
}

// findVisible hides other users' bookings behind ErrNotFound.
func (s *bookingService) findVisible(ctx context.Context, bookingID string, actorID uuid.UUID, isAdmin bool) (*entity.Booking, error) {
	id, err := parseID(bookingID, "booking ID")
	if err != nil {
		return nil, err
	}

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != actorID {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	return booking, nil
}

func (s *bookingService) findBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking %s: %w", id.String(), err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, id.String())
	}
	return booking, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	lookup := newBookingLookup(s.repo)
	data := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		data = append(data, s.toResponse(ctx, booking, lookup))
	}
	return data
}

func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking, lookup *bookingLookup) response.BookingResponse {
	resp := response.BookingToResponse(booking, s.currency)
	room, hotel := lookup.roomAndHotel(ctx, booking.RoomID)
	resp.Room = response.RoomSummary(room, hotel)
	return resp
}

// bookingLookup caches rooms and hotels while building a page of bookings.
// Lookup failures only drop the summary.
type bookingLookup struct {
	repo   *repository.Repository
	rooms  map[uuid.UUID]*entity.Room
	hotels map[uuid.UUID]*entity.Hotel
}

func newBookingLookup(repo *repository.Repository) *bookingLookup {
	return &bookingLookup{
		repo:   repo,
		rooms:  make(map[uuid.UUID]*entity.Room),
		hotels: make(map[uuid.UUID]*entity.Hotel),
	}
}

func (l *bookingLookup) roomAndHotel(ctx context.Context, roomID uuid.UUID) (*entity.Room, *entity.Hotel) {
	room, ok := l.rooms[roomID]
	if !ok {
		room, _ = l.repo.Room.FindByID(ctx, roomID)
		l.rooms[roomID] = room
	}
	if room == nil {
		return nil, nil
	}

	hotel, ok := l.hotels[room.HotelID]
	if !ok {
		hotel, _ = l.repo.Hotel.FindByID(ctx, room.HotelID)
		l.hotels[room.HotelID] = hotel
	}
	return room, hotel
}
