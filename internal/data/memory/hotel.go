package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

type hotelRepository struct{ s *Store }

func hotelID(h *entity.Hotel) uuid.UUID { return h.ID }

func copyHotel(h *entity.Hotel) *entity.Hotel {
	out := *h
	out.Amenities = cloneStrings(h.Amenities)
	out.Images = cloneStrings(h.Images)
	return &out
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.hotels = append(r.s.hotels, copyHotel(hotel))
	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.hotels, id, hotelID)
	if i < 0 {
		return nil, nil
	}
	return copyHotel(r.s.hotels[i]), nil
}

func (r *hotelRepository) matching(filter repository.HotelFilter) []*entity.Hotel {
	var out []*entity.Hotel
	for _, h := range r.s.hotels {
		if filter.ActiveOnly && !h.IsActive {
			continue
		}
		if filter.Location != nil && *filter.Location != "" &&
			!strings.Contains(strings.ToLower(h.Location), strings.ToLower(*filter.Location)) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (r *hotelRepository) FindAll(ctx context.Context, filter repository.HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sorted := newestFirst(r.matching(filter), func(h *entity.Hotel) time.Time { return h.CreatedAt })
	var hotels []*entity.Hotel
	for _, h := range page(sorted, limit, offset) {
		hotels = append(hotels, copyHotel(h))
	}
	return hotels, nil
}

func (r *hotelRepository) CountAll(ctx context.Context, filter repository.HotelFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.matching(filter))), nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.hotels, hotel.ID, hotelID)
	if i < 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}
	updated := copyHotel(hotel)
	updated.IsActive = r.s.hotels[i].IsActive
	updated.CreatedAt = r.s.hotels[i].CreatedAt
	r.s.hotels[i] = updated
	return nil
}

func (r *hotelRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.hotels, id, hotelID)
	if i < 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}
	r.s.hotels[i].IsActive = active
	r.s.hotels[i].UpdatedAt = time.Now().UTC()
	return nil
}

func (r *hotelRepository) AppendImages(ctx context.Context, id uuid.UUID, images []string) (*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.hotels, id, hotelID)
	if i < 0 {
		return nil, nil
	}
	r.s.hotels[i].Images = append(r.s.hotels[i].Images, images...)
	r.s.hotels[i].UpdatedAt = time.Now().UTC()
	return copyHotel(r.s.hotels[i]), nil
}
