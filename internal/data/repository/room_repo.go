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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	// FindByHotelID returns active rooms by ascending price, or every room newest first.
	FindByHotelID(ctx context.Context, hotelID uuid.UUID, activeOnly bool) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, hotel_id, type, description, price_per_night, max_guests, total_rooms, is_active, created_at, updated_at`

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.HotelID,
		room.Type,
		room.Description,
		room.PricePerNight,
		room.MaxGuests,
		room.TotalRooms,
		room.IsActive,
		room.CreatedAt,
		room.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("hotel_id", room.HotelID.String()),
			zap.String("type", room.Type),
		)
		return fmt.Errorf("create room %s: %w", room.Type, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID, activeOnly bool) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 ORDER BY created_at DESC`
	if activeOnly {
		query = `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 AND is_active = TRUE ORDER BY price_per_night ASC`
	}

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find rooms by hotel ID %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET type = $2, description = $3, price_per_night = $4, max_guests = $5, total_rooms = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Type,
		room.Description,
		room.PricePerNight,
		room.MaxGuests,
		room.TotalRooms,
		room.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE rooms SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		r.log.Error("Failed to set room active flag",
			zap.Error(err),
			zap.String("room_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set room %s active=%t: %w", id.String(), active, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Type,
		&room.Description,
		&room.PricePerNight,
		&room.MaxGuests,
		&room.TotalRooms,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
