package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithinCapacity inserts the booking only if fewer than room.total_rooms
	// non-cancelled bookings overlap its range. The check and the insert are atomic.
	CreateWithinCapacity(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error)

	// Business queries
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, statuses []entity.BookingStatus) (int, error)
	// TransitionStatus moves the booking to `to` only while its status is one of `from`.
	// Returns (nil, nil) when the booking does not exist and ErrStatusConflict when it is in another state.
	TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, user_id, room_id, check_in, check_out, total_price, status, created_at, updated_at`

func (r *bookingRepository) CreateWithinCapacity(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// The room row lock serializes every creation for this room type.
	var totalRooms int
	var isActive bool
	err = tx.QueryRow(ctx,
		`SELECT total_rooms, is_active FROM rooms WHERE id = $1 FOR UPDATE`,
		booking.RoomID,
	).Scan(&totalRooms, &isActive)
	if err == pgx.ErrNoRows || (err == nil && !isActive) {
		return ErrRoomUnavailable
	}
	if err != nil {
		r.log.Error("Failed to lock room",
			zap.Error(err),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("lock room %s: %w", booking.RoomID.String(), err)
	}

	var overlapping int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE room_id = $1 AND status <> 'CANCELLED' AND check_in < $3 AND check_out > $2
	`, booking.RoomID, booking.CheckIn, booking.CheckOut).Scan(&overlapping)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("count overlapping bookings: %w", err)
	}

	if overlapping >= totalRooms {
		return ErrCapacityExceeded
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		booking.ID,
		booking.Reference,
		booking.UserID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, statusArg(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`,
		statusArg(status),
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, statuses []entity.BookingStatus) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE room_id = $1 AND status = ANY($2) AND check_in < $4 AND check_out > $3
	`

	var count int
	err := r.db.QueryRow(ctx, query, roomID, statusStrings(statuses), checkIn, checkOut).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for room %s: %w", roomID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (*entity.Booking, error) {
	query := `
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, to, statusStrings(from)))
	if err == nil {
		return booking, nil
	}
	if err != pgx.ErrNoRows {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(to)),
		)
		return nil, fmt.Errorf("update booking %s status to %s: %w", id.String(), to, err)
	}

	// Nothing updated: either the booking is gone or another request moved it first.
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return nil, fmt.Errorf("booking %s is %s: %w", id.String(), existing.Status, ErrStatusConflict)
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func statusStrings(statuses []entity.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func statusArg(status *entity.BookingStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}
