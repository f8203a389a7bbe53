package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, handler *adaptor.Handler, deps routeDeps) error {
	limit, err := deps.rateLimit("auth")
	if err != nil {
		return err
	}

	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.With(limit).Post("/register", handler.Auth.Register)
		r.With(limit).Post("/login", handler.Auth.Login)
		r.Post("/logout", handler.Auth.Logout)

		// ==================== PROTECTED ROUTES ====================
		r.With(deps.auth).Get("/me", handler.User.GetProfile)
	})
	return nil
}
