package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, handler *adaptor.Handler, deps routeDeps) error {
	h := handler.Payment

	limit, err := deps.rateLimit("payments")
	if err != nil {
		return err
	}

	r.Route("/api/payments", func(r chi.Router) {
		r.Use(deps.auth)

		r.With(limit).Post("/", h.AttemptPayment)
		r.Get("/me", h.GetUserPayments)

		r.With(deps.admin).Get("/admin/all", h.GetAllPayments)
	})
	return nil
}
