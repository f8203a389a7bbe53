package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRoomsByHotel handles GET /api/rooms/hotel/{hotelId} (public, cheapest first)
func (h *RoomHandler) GetRoomsByHotel(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRoomsByHotel(r.Context(), chi.URLParam(r, "hotelId"))
	if err != nil {
		handleServiceError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetAllRoomsByHotel handles GET /api/rooms/admin/hotel/{hotelId}
func (h *RoomHandler) GetAllRoomsByHotel(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetAllRoomsByHotel(r.Context(), chi.URLParam(r, "hotelId"))
	if err != nil {
		handleServiceError(w, h.log, err, "get all rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CreateRoom handles POST /api/rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// UpdateRoom handles PUT /api/rooms/{id}
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated", room)
}

// DeactivateRoom handles DELETE /api/rooms/{id}
func (h *RoomHandler) DeactivateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.SetRoomActive(r.Context(), chi.URLParam(r, "id"), false)
	if err != nil {
		handleServiceError(w, h.log, err, "deactivate room")
		return
	}

	utils.ResponseSuccess(w, "Room deactivated", room)
}

// ActivateRoom handles PATCH /api/rooms/{id}/activate
func (h *RoomHandler) ActivateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.SetRoomActive(r.Context(), chi.URLParam(r, "id"), true)
	if err != nil {
		handleServiceError(w, h.log, err, "activate room")
		return
	}

	utils.ResponseSuccess(w, "Room activated", room)
}
