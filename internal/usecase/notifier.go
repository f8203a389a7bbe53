package usecase

import (
	"context"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"

	"go.uber.org/zap"
)

const notifyTimeout = 30 * time.Second

// Notifier delivers guest notifications. Implemented by mailer.Mailer.
type Notifier interface {
	BookingReceived(ctx context.Context, notice mailer.BookingNotice) error
	BookingCancelled(ctx context.Context, notice mailer.BookingNotice) error
	PaymentSucceeded(ctx context.Context, notice mailer.PaymentNotice) error
	PaymentFailed(ctx context.Context, notice mailer.PaymentNotice) error
}

// dispatcher sends notifications in the background. Failures are logged and
// never reach the caller.
type dispatcher struct {
	notifier Notifier
	repo     *repository.Repository
	currency string
	log      *zap.Logger
	inflight sync.WaitGroup
}

func (d *dispatcher) bookingEvent(kind string, booking entity.Booking, send func(context.Context, mailer.BookingNotice) error) {
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		notice, err := d.buildNotice(ctx, &booking)
		if err == nil {
			err = send(ctx, notice)
		}
		if err != nil {
			d.log.Warn("Failed to send notification",
				zap.Error(err),
				zap.String("kind", kind),
				zap.String("booking_id", booking.ID.String()),
			)
		}
	}()
}

func (d *dispatcher) paymentEvent(kind string, booking entity.Booking, payment entity.Payment, send func(context.Context, mailer.PaymentNotice) error) {
	d.bookingEvent(kind, booking, func(ctx context.Context, notice mailer.BookingNotice) error {
		return send(ctx, mailer.PaymentNotice{
			BookingNotice: notice,
			Method:        string(payment.Method),
			CardBrand:     payment.CardBrand,
			Amount:        payment.Amount,
		})
	})
}

func (d *dispatcher) BookingReceived(booking entity.Booking) {
	if d.notifier == nil {
		return
	}
	d.bookingEvent("booking_received", booking, d.notifier.BookingReceived)
}

func (d *dispatcher) BookingCancelled(booking entity.Booking) {
	if d.notifier == nil {
		return
	}
	d.bookingEvent("booking_cancelled", booking, d.notifier.BookingCancelled)
}

func (d *dispatcher) PaymentResult(booking entity.Booking, payment entity.Payment) {
	if d.notifier == nil {
		return
	}
	if payment.Status == entity.PaymentStatusSuccess {
		d.paymentEvent("payment_succeeded", booking, payment, d.notifier.PaymentSucceeded)
		return
	}
	d.paymentEvent("payment_failed", booking, payment, d.notifier.PaymentFailed)
}

func (d *dispatcher) buildNotice(ctx context.Context, booking *entity.Booking) (mailer.BookingNotice, error) {
	notice := mailer.BookingNotice{
		Reference:  booking.Reference,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Nights:     entity.Nights(booking.CheckIn, booking.CheckOut),
		TotalPrice: booking.TotalPrice,
		Currency:   d.currency,
	}

	user, err := d.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		return notice, err
	}
	if user != nil {
		notice.To = user.Email
		notice.Name = user.Name
	}

	room, err := d.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		return notice, err
	}
	if room != nil {
		notice.RoomType = room.Type
		hotel, err := d.repo.Hotel.FindByID(ctx, room.HotelID)
		if err != nil {
			return notice, err
		}
		if hotel != nil {
			notice.HotelName = hotel.Name
		}
	}

	return notice, nil
}

// wait blocks until every queued notification finished or ctx is done.
func (d *dispatcher) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
