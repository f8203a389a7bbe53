package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

type bookingRepository struct{ s *Store }

func bookingID(b *entity.Booking) uuid.UUID { return b.ID }

func bookingCreatedAt(b *entity.Booking) time.Time { return b.CreatedAt }

func copyBookings(items []*entity.Booking) []*entity.Booking {
	out := make([]*entity.Booking, 0, len(items))
	for _, b := range items {
		copied := *b
		out = append(out, &copied)
	}
	return out
}

func (r *bookingRepository) CreateWithinCapacity(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.rooms, booking.RoomID, roomID)
	if i < 0 || !r.s.rooms[i].IsActive {
		return repository.ErrRoomUnavailable
	}

	overlapping := 0
	for _, existing := range r.s.bookings {
		if existing.RoomID == booking.RoomID && existing.HoldsInventory() &&
			existing.Overlaps(booking.CheckIn, booking.CheckOut) {
			overlapping++
		}
	}
	if overlapping >= r.s.rooms[i].TotalRooms {
		return repository.ErrCapacityExceeded
	}

	stored := *booking
	r.s.bookings = append(r.s.bookings, &stored)
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.bookings, id, bookingID)
	if i < 0 {
		return nil, nil
	}
	booking := *r.s.bookings[i]
	return &booking, nil
}

func (r *bookingRepository) byUser(userID uuid.UUID) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (r *bookingRepository) byStatus(status *entity.BookingStatus) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range r.s.bookings {
		if status == nil || b.Status == *status {
			out = append(out, b)
		}
	}
	return out
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return copyBookings(page(newestFirst(r.byUser(userID), bookingCreatedAt), limit, offset)), nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.byUser(userID))), nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return copyBookings(page(newestFirst(r.byStatus(status), bookingCreatedAt), limit, offset)), nil
}

func (r *bookingRepository) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.byStatus(status))), nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, statuses []entity.BookingStatus) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, b := range r.s.bookings {
		if b.RoomID == roomID && slices.Contains(statuses, b.Status) && b.Overlaps(checkIn, checkOut) {
			count++
		}
	}
	return count, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.bookings, id, bookingID)
	if i < 0 {
		return nil, nil
	}
	current := r.s.bookings[i]
	if !slices.Contains(from, current.Status) {
		return nil, fmt.Errorf("booking %s is %s: %w", id.String(), current.Status, repository.ErrStatusConflict)
	}

	current.Status = to
	current.UpdatedAt = time.Now().UTC()
	booking := *current
	return &booking, nil
}
