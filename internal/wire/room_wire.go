package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, handler *adaptor.Handler, deps routeDeps) error {
	h := handler.Room

	r.Route("/api/rooms", func(r chi.Router) {
		// GET /api/rooms/hotel/{hotelId} - active rooms, cheapest first
		r.Get("/hotel/{hotelId}", h.GetRoomsByHotel)

		r.Group(func(r chi.Router) {
			r.Use(deps.auth)
			r.Use(deps.admin)

			r.Get("/admin/hotel/{hotelId}", h.GetAllRoomsByHotel)
			r.Post("/", h.CreateRoom)
			r.Put("/{id}", h.UpdateRoom)
			r.Delete("/{id}", h.DeactivateRoom)
			r.Patch("/{id}/activate", h.ActivateRoom)
		})
	})
	return nil
}
