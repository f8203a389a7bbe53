package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// RecordAttempt stores the payment and, when it succeeded, confirms the booking,
	// all while holding the booking row. The booking must still be PENDING,
	// otherwise nothing is written and ErrStatusConflict is returned.
	RecordAttempt(ctx context.Context, payment *entity.Payment) (*entity.Booking, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Payment, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	CountAll(ctx context.Context) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, method, card_brand, status, created_at`

func (r *paymentRepository) RecordAttempt(ctx context.Context, payment *entity.Payment) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin payment tx: %w", err)
	}
	defer tx.Rollback(ctx)

	booking, err := scanBooking(tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`,
		payment.BookingID,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock booking for payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil, fmt.Errorf("lock booking %s: %w", payment.BookingID.String(), err)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking %s is %s: %w", booking.ID.String(), booking.Status, ErrStatusConflict)
	}

	// The attempt is persisted before the booking changes.
	_, err = tx.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.CardBrand,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("method", string(payment.Method)),
		)
		return nil, fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	if payment.Status == entity.PaymentStatusSuccess {
		booking, err = scanBooking(tx.QueryRow(ctx, `
			UPDATE bookings SET status = 'CONFIRMED', updated_at = NOW()
			WHERE id = $1
			RETURNING `+bookingColumns,
			payment.BookingID,
		))
		if err != nil {
			r.log.Error("Failed to confirm booking",
				zap.Error(err),
				zap.String("booking_id", payment.BookingID.String()),
			)
			return nil, fmt.Errorf("confirm booking %s: %w", payment.BookingID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return booking, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}

	return r.collect(rows)
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT p.id, p.booking_id, p.amount, p.method, p.card_brand, p.status, p.created_at
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.user_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find payments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find payments by user ID %s: %w", userID.String(), err)
	}

	return r.collect(rows)
}

func (r *paymentRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*) FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.user_id = $1
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count payments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count payments by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find payments", zap.Error(err))
		return nil, fmt.Errorf("find payments: %w", err)
	}

	return r.collect(rows)
}

func (r *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count); err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}

	return count, nil
}

func (r *paymentRepository) collect(rows pgx.Rows) ([]*entity.Payment, error) {
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.Method,
			&payment.CardBrand,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}
