package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// GetHotels handles GET /api/hotels?location=&page=&per_page= (public)
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	req := &request.HotelListRequest{
		PaginatedRequest: paginationFromQuery(r),
		Location:         r.URL.Query().Get("location"),
	}

	hotels, err := h.service.GetHotels(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelByID handles GET /api/hotels/{id} (public)
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotelByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// ==================== ADMIN METHODS ====================

// GetAllHotels handles GET /api/hotels/admin/all, inactive hotels included
func (h *HotelHandler) GetAllHotels(w http.ResponseWriter, r *http.Request) {
	req := &request.HotelListRequest{
		PaginatedRequest: paginationFromQuery(r),
		Location:         r.URL.Query().Get("location"),
	}

	hotels, err := h.service.GetAllHotels(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// CreateHotel handles POST /api/hotels
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHotelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel created", hotel)
}

// UpdateHotel handles PUT /api/hotels/{id}
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateHotelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hotel, err := h.service.UpdateHotel(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel updated", hotel)
}

// DeactivateHotel handles DELETE /api/hotels/{id}. Hotels are never hard-deleted.
func (h *HotelHandler) DeactivateHotel(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

// ActivateHotel handles PATCH /api/hotels/{id}/activate
func (h *HotelHandler) ActivateHotel(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *HotelHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	hotel, err := h.service.SetHotelActive(r.Context(), chi.URLParam(r, "id"), active)
	if err != nil {
		handleServiceError(w, h.log, err, "set hotel active")
		return
	}

	message := "Hotel deactivated"
	if active {
		message = "Hotel activated"
	}
	utils.ResponseSuccess(w, message, hotel)
}

// AddHotelImages handles POST /api/hotels/{id}/images
func (h *HotelHandler) AddHotelImages(w http.ResponseWriter, r *http.Request) {
	var req request.AddHotelImagesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hotel, err := h.service.AddHotelImages(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add hotel images")
		return
	}

	utils.ResponseSuccess(w, "Images added", hotel)
}
