package repository

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// HotelFilter narrows hotel listings. Location is a case-insensitive substring match.
type HotelFilter struct {
	ActiveOnly bool
	Location   *string
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindAll(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error)
	CountAll(ctx context.Context, filter HotelFilter) (int64, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	AppendImages(ctx context.Context, id uuid.UUID, images []string) (*entity.Hotel, error)
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `id, name, location, description, amenities, images, is_active, created_at, updated_at`

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, name, location, description, amenities, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Location,
		hotel.Description,
		nonNil(hotel.Amenities),
		nonNil(hotel.Images),
		hotel.IsActive,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	hotel, err := scanHotel(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindAll(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	where, args := hotelWhere(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + hotelColumns + ` FROM hotels`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find hotels",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, rows.Err()
}

func (r *hotelRepository) CountAll(ctx context.Context, filter HotelFilter) (int64, error) {
	where, args := hotelWhere(filter)

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hotels`+where, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, location = $3, description = $4, amenities = $5, images = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Location,
		hotel.Description,
		nonNil(hotel.Amenities),
		nonNil(hotel.Images),
		hotel.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}

	return nil
}

func (r *hotelRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE hotels SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		r.log.Error("Failed to set hotel active flag",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set hotel %s active=%t: %w", id.String(), active, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	return nil
}

func (r *hotelRepository) AppendImages(ctx context.Context, id uuid.UUID, images []string) (*entity.Hotel, error) {
	query := `
		UPDATE hotels
		SET images = array_cat(images, $2), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + hotelColumns

	hotel, err := scanHotel(r.db.QueryRow(ctx, query, id, nonNil(images)))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to append hotel images",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.Int("count", len(images)),
		)
		return nil, fmt.Errorf("append images to hotel %s: %w", id.String(), err)
	}

	return hotel, nil
}

func hotelWhere(filter HotelFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.Location != nil && *filter.Location != "" {
		args = append(args, "%"+*filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.Description,
		&hotel.Amenities,
		&hotel.Images,
		&hotel.IsActive,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
