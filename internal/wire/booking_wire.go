package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, handler *adaptor.Handler, deps routeDeps) error {
	h := handler.Booking

	limit, err := deps.rateLimit("bookings")
	if err != nil {
		return err
	}

	r.Route("/api/bookings", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/bookings/availability/{roomId}?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
		r.Get("/availability/{roomId}", h.CheckAvailability)

		// ==================== ADMIN ROUTES ====================
		// Registered before /{id} so "admin" is never taken for a booking ID.
		r.Route("/admin", func(r chi.Router) {
			r.Use(deps.auth)
			r.Use(deps.admin)

			r.Get("/all", h.GetAllBookings)
			r.Post("/confirm/{id}", h.ConfirmBooking)
			r.Delete("/cancel/{id}", h.CancelBooking)
		})

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(deps.auth)

			// auth runs first so the limiter keys on the user
			r.With(limit).Post("/", h.CreateBooking)
			r.Get("/me", h.GetUserBookings)
			r.Get("/{id}", h.GetBookingByID)
			r.Delete("/{id}", h.CancelBooking)
		})
	})
	return nil
}
