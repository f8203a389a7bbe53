package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service      usecase.BookingService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, availability usecase.AvailabilityService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:      service,
		availability: availability,
		log:          log.With(zap.String("handler", "booking")),
	}
}

// CheckAvailability handles GET /api/bookings/availability/{roomId}?checkIn=&checkOut= (public)
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AvailabilityRequest{
		RoomID:   chi.URLParam(r, "roomId"),
		CheckIn:  query.Get("checkIn"),
		CheckOut: query.Get("checkOut"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	availability, err := h.availability.CheckAvailability(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	// Get user ID from context
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created, awaiting payment", booking)
}

// GetUserBookings handles GET /api/bookings/me (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := paginationFromQuery(r)
	bookings, err := h.service.GetUserBookings(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (owner or admin)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), chi.URLParam(r, "id"), userID, middleware.IsAdmin(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles DELETE /api/bookings/{id} and DELETE /api/bookings/admin/cancel/{id}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "id"), userID, middleware.IsAdmin(r))
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// ==================== ADMIN METHODS ====================

// GetAllBookings handles GET /api/bookings/admin/all?status=&page=&per_page=
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	req := &request.BookingListRequest{
		PaginatedRequest: paginationFromQuery(r),
		Status:           r.URL.Query().Get("status"),
	}

	bookings, err := h.service.GetAllBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ConfirmBooking handles POST /api/bookings/admin/confirm/{id}
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.AdminConfirmBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "confirm booking")
		return
	}

	utils.ResponseSuccess(w, "Booking confirmed", booking)
}
