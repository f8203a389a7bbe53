package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelService interface {
	// Public endpoints
	GetHotels(ctx context.Context, req *request.HotelListRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	GetHotelByID(ctx context.Context, hotelID string) (*response.HotelResponse, error)

	// Admin endpoints
	GetAllHotels(ctx context.Context, req *request.HotelListRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	UpdateHotel(ctx context.Context, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error)
	SetHotelActive(ctx context.Context, hotelID string, active bool) (*response.HotelResponse, error)
	AddHotelImages(ctx context.Context, hotelID string, req *request.AddHotelImagesRequest) (*response.HotelResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) GetHotels(ctx context.Context, req *request.HotelListRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	return s.list(ctx, req, true)
}

func (s *hotelService) GetAllHotels(ctx context.Context, req *request.HotelListRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	return s.list(ctx, req, false)
}

func (s *hotelService) list(ctx context.Context, req *request.HotelListRequest, activeOnly bool) (*response.PaginatedResponse[response.HotelResponse], error) {
	filter := repository.HotelFilter{ActiveOnly: activeOnly}
	if location := strings.TrimSpace(req.Location); location != "" {
		filter.Location = &location
	}

	hotels, err := s.repo.Hotel.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list hotels", zap.Error(err), zap.Bool("active_only", activeOnly))
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	total, err := s.repo.Hotel.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count hotels", zap.Error(err))
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	data := make([]response.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		data = append(data, response.HotelToResponse(hotel))
	}

	return response.NewPaginatedResponse(data, req.PageNumber(), req.Limit(), total), nil
}

// GetHotelByID returns an active hotel with its active rooms, cheapest first.
func (s *hotelService) GetHotelByID(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	id, err := parseID(hotelID, "hotel ID")
	if err != nil {
		return nil, err
	}

	hotel, err := s.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hotel.IsActive {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, id, true)
	if err != nil {
		s.log.Error("Failed to load hotel rooms", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("load rooms of hotel %s: %w", hotelID, err)
	}

	resp := response.HotelToResponse(hotel)
	resp.Rooms = make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, response.RoomToResponse(room))
	}

	return &resp, nil
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create hotel validation failed", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	hotel := &entity.Hotel{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Amenities:   req.Amenities,
		Images:      req.Images,
		IsActive:    true,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		s.log.Error("Failed to create hotel", zap.Error(err), zap.String("name", hotel.Name))
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created", zap.String("hotel_id", hotel.ID.String()), zap.String("name", hotel.Name))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := parseID(hotelID, "hotel ID")
	if err != nil {
		return nil, err
	}

	hotel, err := s.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		hotel.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		hotel.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	if req.Amenities != nil {
		hotel.Amenities = req.Amenities
	}
	hotel.UpdatedAt = time.Now().UTC()

	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		s.log.Error("Failed to update hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

// SetHotelActive soft deletes or restores a hotel. Rooms and bookings are left untouched.
func (s *hotelService) SetHotelActive(ctx context.Context, hotelID string, active bool) (*response.HotelResponse, error) {
	id, err := parseID(hotelID, "hotel ID")
	if err != nil {
		return nil, err
	}

	if _, err := s.findHotel(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Hotel.SetActive(ctx, id, active); err != nil {
		s.log.Error("Failed to change hotel status", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("set hotel active: %w", err)
	}

	s.log.Info("Hotel status changed", zap.String("hotel_id", hotelID), zap.Bool("active", active))

	hotel, err := s.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) AddHotelImages(ctx context.Context, hotelID string, req *request.AddHotelImagesRequest) (*response.HotelResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := parseID(hotelID, "hotel ID")
	if err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.AppendImages(ctx, id, req.Images)
	if err != nil {
		s.log.Error("Failed to add hotel images", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("add hotel images: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) findHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find hotel", zap.Error(err), zap.String("hotel_id", id.String()))
		return nil, fmt.Errorf("find hotel %s: %w", id.String(), err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, id.String())
	}
	return hotel, nil
}
