package memory

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

type paymentRepository struct{ s *Store }

func paymentCreatedAt(p *entity.Payment) time.Time { return p.CreatedAt }

func copyPayments(items []*entity.Payment) []*entity.Payment {
	out := make([]*entity.Payment, 0, len(items))
	for _, p := range items {
		copied := *p
		out = append(out, &copied)
	}
	return out
}

func (r *paymentRepository) RecordAttempt(ctx context.Context, payment *entity.Payment) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := findIndex(r.s.bookings, payment.BookingID, bookingID)
	if i < 0 {
		return nil, nil
	}
	booking := r.s.bookings[i]
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking %s is %s: %w", booking.ID.String(), booking.Status, repository.ErrStatusConflict)
	}

	stored := *payment
	r.s.payments = append(r.s.payments, &stored)

	if payment.Status == entity.PaymentStatusSuccess {
		booking.Status = entity.BookingStatusConfirmed
		booking.UpdatedAt = time.Now().UTC()
	}

	result := *booking
	return &result, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []*entity.Payment
	for _, p := range r.s.payments {
		if p.BookingID == bookingID {
			matched = append(matched, p)
		}
	}
	return copyPayments(newestFirst(matched, paymentCreatedAt)), nil
}

func (r *paymentRepository) byUser(userID uuid.UUID) []*entity.Payment {
	owned := make(map[uuid.UUID]bool)
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			owned[b.ID] = true
		}
	}

	var out []*entity.Payment
	for _, p := range r.s.payments {
		if owned[p.BookingID] {
			out = append(out, p)
		}
	}
	return out
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return copyPayments(page(newestFirst(r.byUser(userID), paymentCreatedAt), limit, offset)), nil
}

func (r *paymentRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.byUser(userID))), nil
}

func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return copyPayments(page(newestFirst(r.s.payments, paymentCreatedAt), limit, offset)), nil
}

func (r *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.payments)), nil
}
