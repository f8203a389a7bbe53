package usecase

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 2, 2500)

	booking := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-13")

	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, int64(7500), booking.TotalPrice)
	assert.Equal(t, "2024-01-10", booking.CheckIn)
	assert.Equal(t, "2024-01-13", booking.CheckOut)
	assert.True(t, strings.HasPrefix(booking.Reference, "HB-"))
	require.NotNil(t, booking.Room)
	require.NotNil(t, booking.Room.Hotel)
	assert.Equal(t, "Sea View", booking.Room.Hotel.Name)

	assert.Eventually(t, func() bool { return f.notifier.has("booking_received") }, time.Second, 10*time.Millisecond)
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     request.CreateBookingRequest
		wantErr error
	}{
		{"missing dates", request.CreateBookingRequest{RoomID: room.ID}, ErrValidation},
		{"bad room id", request.CreateBookingRequest{RoomID: "nope", CheckIn: "2024-01-01", CheckOut: "2024-01-02"}, ErrValidation},
		{"unparsable date", request.CreateBookingRequest{RoomID: room.ID, CheckIn: "01/10/2024", CheckOut: "2024-01-12"}, ErrValidation},
		{"same day", request.CreateBookingRequest{RoomID: room.ID, CheckIn: "2024-01-10", CheckOut: "2024-01-10"}, ErrValidation},
		{"reversed", request.CreateBookingRequest{RoomID: room.ID, CheckIn: "2024-01-12", CheckOut: "2024-01-10"}, ErrValidation},
		{"unknown room", request.CreateBookingRequest{RoomID: uuid.NewString(), CheckIn: "2024-01-10", CheckOut: "2024-01-12"}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Booking.CreateBooking(ctx, f.guest.ID, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBookingPriceLimits(t *testing.T) {
	f := newFixture(t)
	cheap := f.addRoom(t, 1, 1000)
	pricey := f.addRoom(t, 1, math.MaxInt64/2+1)
	ctx := context.Background()

	tests := []struct {
		name      string
		roomID    string
		checkIn   string
		checkOut  string
		wantErr   error
		wantTotal int64
	}{
		{"one year is allowed", cheap.ID, "2024-01-01", "2024-12-31", nil, 365 * 1000},
		{"just over a year", cheap.ID, "2024-01-01", "2025-01-02", ErrValidation, 0},
		{"centuries", cheap.ID, "2000-01-01", "2400-01-01", ErrValidation, 0},
		{"one night at a huge price", pricey.ID, "2024-01-01", "2024-01-02", nil, math.MaxInt64/2 + 1},
		{"total would overflow", pricey.ID, "2024-02-01", "2024-02-03", ErrValidation, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := f.service.Booking.CreateBooking(ctx, f.guest.ID, &request.CreateBookingRequest{
				RoomID: tt.roomID, CheckIn: tt.checkIn, CheckOut: tt.checkOut,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, booking.TotalPrice)
		})
	}
}

func TestCreateBookingInactiveRoom(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	_, err := f.service.Room.SetRoomActive(ctx, room.ID, false)
	require.NoError(t, err)

	_, err = f.service.Booking.CreateBooking(ctx, f.guest.ID, &request.CreateBookingRequest{
		RoomID: room.ID, CheckIn: "2024-01-10", CheckOut: "2024-01-12",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingCapacity(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-15")

	_, err := f.service.Booking.CreateBooking(ctx, f.guest.ID, &request.CreateBookingRequest{
		RoomID: room.ID, CheckIn: "2024-01-14", CheckOut: "2024-01-16",
	})
	assert.ErrorIs(t, err, ErrCapacity)

	// checkout day is free again
	f.book(t, f.guest.ID, room.ID, "2024-01-15", "2024-01-20")
}

func TestCreateBookingConcurrentLastUnit(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.Booking.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
				RoomID: room.ID, CheckIn: "2024-05-01", CheckOut: "2024-05-03",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrCapacity)
	}
	assert.Equal(t, 1, succeeded)

	availability, err := f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: room.ID, CheckIn: "2024-05-01", CheckOut: "2024-05-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, availability.BookedRooms)
	assert.False(t, availability.IsAvailable)
}

func TestPriceFreeze(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 2000)
	ctx := context.Background()

	booking := f.book(t, f.guest.ID, room.ID, "2024-02-01", "2024-02-04")
	assert.Equal(t, int64(6000), booking.TotalPrice)

	newPrice := int64(9000)
	_, err := f.service.Room.UpdateRoom(ctx, room.ID, &request.UpdateRoomRequest{PricePerNight: &newPrice})
	require.NoError(t, err)

	detail, err := f.service.Booking.GetBookingByID(ctx, booking.ID, f.guest.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), detail.TotalPrice)
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	booking := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")

	// other users cannot see it
	_, err := f.service.Booking.CancelBooking(ctx, booking.ID, uuid.New(), false)
	assert.ErrorIs(t, err, ErrNotFound)

	cancelled, err := f.service.Booking.CancelBooking(ctx, booking.ID, f.guest.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	_, err = f.service.Booking.CancelBooking(ctx, booking.ID, f.guest.ID, false)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, entity.BookingStatusCancelled, f.status(t, booking.ID))

	assert.Eventually(t, func() bool { return f.notifier.has("booking_cancelled") }, time.Second, 10*time.Millisecond)

	// the unit is free again
	f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")
}

func TestAdminCancelsConfirmedBooking(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	booking := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")
	_, err := f.service.Booking.AdminConfirmBooking(ctx, booking.ID)
	require.NoError(t, err)

	cancelled, err := f.service.Booking.CancelBooking(ctx, booking.ID, f.admin.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
}

func TestAdminConfirmBooking(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 2, 1000)
	ctx := context.Background()

	booking := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")

	confirmed, err := f.service.Booking.AdminConfirmBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	_, err = f.service.Booking.AdminConfirmBooking(ctx, booking.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	other := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")
	_, err = f.service.Booking.CancelBooking(ctx, other.ID, f.guest.ID, false)
	require.NoError(t, err)
	_, err = f.service.Booking.AdminConfirmBooking(ctx, other.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = f.service.Booking.AdminConfirmBooking(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingListings(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 5, 1000)
	ctx := context.Background()
	other := f.addUser(t, "other@example.com", entity.RoleUser)

	first := f.book(t, f.guest.ID, room.ID, "2024-01-01", "2024-01-02")
	second := f.book(t, f.guest.ID, room.ID, "2024-01-03", "2024-01-04")
	f.book(t, other.ID, room.ID, "2024-01-01", "2024-01-02")

	_, err := f.service.Booking.CancelBooking(ctx, first.ID, f.guest.ID, false)
	require.NoError(t, err)

	mine, err := f.service.Booking.GetUserBookings(ctx, f.guest.ID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, mine.Data, 2)
	assert.Equal(t, int64(2), mine.Pagination.Total)
	assert.Equal(t, second.ID, mine.Data[0].ID)

	all, err := f.service.Booking.GetAllBookings(ctx, &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Pagination.Total)

	cancelled, err := f.service.Booking.GetAllBookings(ctx, &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Status:           "CANCELLED",
	})
	require.NoError(t, err)
	require.Len(t, cancelled.Data, 1)
	assert.Equal(t, first.ID, cancelled.Data[0].ID)

	_, err = f.service.Booking.GetAllBookings(ctx, &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Status:           "LOST",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetBookingByIDVisibility(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	booking := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")

	_, err := f.service.Booking.GetBookingByID(ctx, booking.ID, uuid.New(), false)
	assert.ErrorIs(t, err, ErrNotFound)

	detail, err := f.service.Booking.GetBookingByID(ctx, booking.ID, f.admin.ID, true)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, detail.ID)
	assert.Empty(t, detail.Payments)
}
