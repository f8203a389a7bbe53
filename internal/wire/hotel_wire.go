package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHotel(r chi.Router, handler *adaptor.Handler, deps routeDeps) error {
	h := handler.Hotel

	r.Route("/api/hotels", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", h.GetHotels)
		r.Get("/{id}", h.GetHotelByID)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(deps.auth)
			r.Use(deps.admin)

			r.Get("/admin/all", h.GetAllHotels)
			r.Post("/", h.CreateHotel)
			r.Put("/{id}", h.UpdateHotel)
			r.Delete("/{id}", h.DeactivateHotel)
			r.Patch("/{id}/activate", h.ActivateHotel)
			r.Post("/{id}/images", h.AddHotelImages)
		})
	})
	return nil
}
