// Package memory is an in-process implementation of the repository
// interfaces. It backs STORAGE_DRIVER=memory and the service tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

// Store keeps every table behind a single lock so that the capacity check,
// the booking insert and the payment-then-confirm sequence are each atomic.
type Store struct {
	mu       sync.Mutex
	users    []*entity.User
	hotels   []*entity.Hotel
	rooms    []*entity.Room
	bookings []*entity.Booking
	payments []*entity.Payment
}

func NewStore() *Store {
	return &Store{}
}

// NewRepository exposes a fresh store through the same aggregate the Postgres layer uses.
func NewRepository() *repository.Repository {
	return NewStore().Repository()
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:    &userRepository{s},
		Hotel:   &hotelRepository{s},
		Room:    &roomRepository{s},
		Booking: &bookingRepository{s},
		Payment: &paymentRepository{s},
	}
}

// newestFirst walks items in reverse insertion order and stable-sorts by
// creation time, so equal timestamps still list the latest insert first.
func newestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func findIndex[T any](items []T, id uuid.UUID, idOf func(T) uuid.UUID) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
