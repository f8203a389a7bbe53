package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailabilityBoundaries(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-15")

	tests := []struct {
		checkIn, checkOut string
		booked            int
	}{
		{"2024-01-14", "2024-01-16", 1},
		{"2024-01-15", "2024-01-20", 0},
		{"2024-01-05", "2024-01-10", 0},
		{"2024-01-05", "2024-01-11", 1},
		{"2024-01-11", "2024-01-12", 1},
		{"2024-01-14T18:30:00Z", "2024-01-16T00:00:00Z", 1},
	}

	for _, tt := range tests {
		t.Run(tt.checkIn+"_"+tt.checkOut, func(t *testing.T) {
			got, err := f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
				RoomID: room.ID, CheckIn: tt.checkIn, CheckOut: tt.checkOut,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.booked, got.BookedRooms)
			assert.Equal(t, 1-tt.booked, got.AvailableRooms)
			assert.Equal(t, tt.booked == 0, got.IsAvailable)
		})
	}
}

func TestCheckAvailabilityIgnoresCancelled(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	booking := f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-15")
	_, err := f.service.Booking.CancelBooking(ctx, booking.ID, f.guest.ID, false)
	require.NoError(t, err)

	got, err := f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: room.ID, CheckIn: "2024-01-10", CheckOut: "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.BookedRooms)
	assert.True(t, got.IsAvailable)
}

func TestCheckAvailabilityErrors(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)
	ctx := context.Background()

	_, err := f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: room.ID, CheckIn: "2024-01-15", CheckOut: "2024-01-10",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: room.ID, CheckIn: "tomorrow", CheckOut: "2024-01-10",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: room.ID, CheckIn: "2000-01-01", CheckOut: "2400-01-01",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: uuid.NewString(), CheckIn: "2024-01-10", CheckOut: "2024-01-12",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// any UUID version is looked up, not rejected
	v7, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: v7.String(), CheckIn: "2024-01-10", CheckOut: "2024-01-12",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.Room.SetRoomActive(ctx, room.ID, false)
	require.NoError(t, err)
	_, err = f.service.Availability.CheckAvailability(ctx, &request.AvailabilityRequest{
		RoomID: room.ID, CheckIn: "2024-01-10", CheckOut: "2024-01-12",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
