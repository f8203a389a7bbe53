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

type RoomService interface {
	GetRoomsByHotel(ctx context.Context, hotelID string) ([]response.RoomResponse, error)

	// Admin endpoints
	GetAllRoomsByHotel(ctx context.Context, hotelID string) ([]response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	// UpdateRoom never touches existing bookings; their price is already frozen.
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	SetRoomActive(ctx context.Context, roomID string, active bool) (*response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRoomsByHotel(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
	return s.listByHotel(ctx, hotelID, true)
}

func (s *roomService) GetAllRoomsByHotel(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
	return s.listByHotel(ctx, hotelID, false)
}

func (s *roomService) listByHotel(ctx context.Context, hotelID string, activeOnly bool) ([]response.RoomResponse, error) {
	id, err := parseID(hotelID, "hotel ID")
	if err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("find hotel %s: %w", hotelID, err)
	}
	if hotel == nil || (activeOnly && !hotel.IsActive) {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, id, activeOnly)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("list rooms of hotel %s: %w", hotelID, err)
	}

	data := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, response.RoomToResponse(room))
	}
	return data, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create room validation failed", zap.Error(err))
		return nil, err
	}

	hotelID, err := parseID(req.HotelID, "hotel ID")
	if err != nil {
		return nil, err
	}

	// Rooms can only be added to active hotels
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to find hotel", zap.Error(err), zap.String("hotel_id", req.HotelID))
		return nil, fmt.Errorf("find hotel %s: %w", req.HotelID, err)
	}
	if hotel == nil || !hotel.IsActive {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, req.HotelID)
	}

	now := time.Now().UTC()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HotelID:       hotelID,
		Type:          strings.TrimSpace(req.Type),
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		TotalRooms:    req.TotalRooms,
		IsActive:      true,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("hotel_id", req.HotelID))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("hotel_id", req.HotelID),
		zap.Int("total_rooms", room.TotalRooms),
		zap.Int64("price_per_night", room.PricePerNight),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := parseID(roomID, "room ID")
	if err != nil {
		return nil, err
	}

	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		room.Type = strings.TrimSpace(*req.Type)
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		room.MaxGuests = *req.MaxGuests
	}
	if req.TotalRooms != nil {
		room.TotalRooms = *req.TotalRooms
	}
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) SetRoomActive(ctx context.Context, roomID string, active bool) (*response.RoomResponse, error) {
	id, err := parseID(roomID, "room ID")
	if err != nil {
		return nil, err
	}

	if _, err := s.findRoom(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Room.SetActive(ctx, id, active); err != nil {
		s.log.Error("Failed to change room status", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("set room active: %w", err)
	}

	s.log.Info("Room status changed", zap.String("room_id", roomID), zap.Bool("active", active))

	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) findRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", id.String()))
		return nil, fmt.Errorf("find room %s: %w", id.String(), err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, id.String())
	}
	return room, nil
}
