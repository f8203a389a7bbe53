package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

type roomRepository struct{ s *Store }

func roomID(r *entity.Room) uuid.UUID { return r.ID }

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *room
	r.s.rooms = append(r.s.rooms, &stored)
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.rooms, id, roomID)
	if i < 0 {
		return nil, nil
	}
	room := *r.s.rooms[i]
	return &room, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID, activeOnly bool) ([]*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []*entity.Room
	for _, room := range r.s.rooms {
		if room.HotelID != hotelID || (activeOnly && !room.IsActive) {
			continue
		}
		matched = append(matched, room)
	}

	if activeOnly {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].PricePerNight < matched[j].PricePerNight
		})
	} else {
		matched = newestFirst(matched, func(room *entity.Room) time.Time { return room.CreatedAt })
	}

	rooms := make([]*entity.Room, 0, len(matched))
	for _, room := range matched {
		copied := *room
		rooms = append(rooms, &copied)
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.rooms, room.ID, roomID)
	if i < 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}
	updated := *room
	updated.IsActive = r.s.rooms[i].IsActive
	updated.HotelID = r.s.rooms[i].HotelID
	updated.CreatedAt = r.s.rooms[i].CreatedAt
	r.s.rooms[i] = &updated
	return nil
}

func (r *roomRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.rooms, id, roomID)
	if i < 0 {
		return fmt.Errorf("room %s not found", id.String())
	}
	r.s.rooms[i].IsActive = active
	r.s.rooms[i].UpdatedAt = time.Now().UTC()
	return nil
}
