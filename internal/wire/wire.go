package wire

import (
	"context"
	"fmt"
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
	// Drain waits for background notifications to finish.
	Drain func(ctx context.Context) error
}

// Dependencies are the collaborators built in main. Redis, Notifier and Oracle
// are optional: without Redis rate limits are per process, without a Notifier
// nothing is sent, and without an Oracle payments settle at the configured rate.
type Dependencies struct {
	Repo     *repository.Repository
	Config   *utils.Config
	Logger   *zap.Logger
	Redis    *redis.Client
	Notifier usecase.Notifier
	Oracle   usecase.SettlementOracle
}

// routeDeps is what every wire* function needs
type routeDeps struct {
	auth      func(http.Handler) http.Handler
	admin     func(http.Handler) http.Handler
	rateLimit func(routeID string) (func(http.Handler) http.Handler, error)
}

// Wiring builds services, handlers and routes
func Wiring(deps Dependencies) (*App, error) {
	oracle := deps.Oracle
	if oracle == nil {
		oracle = usecase.RandomSettlement{SuccessRate: deps.Config.Payment.SuccessRate}
	}

	service := usecase.NewService(deps.Repo, deps.Config, deps.Logger, deps.Notifier, oracle)
	handler := adaptor.NewHandler(service, deps.Config, deps.Logger)

	router, err := setupRouter(handler, deps)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: router,
		Drain:  service.DrainNotifications,
	}, nil
}

func setupRouter(handler *adaptor.Handler, deps Dependencies) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.CORS(deps.Config.App.CORSOrigins))

	rd := routeDeps{
		auth:  middleware.Auth(deps.Config.JWT.Secret, deps.Repo.User, deps.Logger),
		admin: middleware.Admin(deps.Repo.User, deps.Logger),
		rateLimit: func(routeID string) (func(http.Handler) http.Handler, error) {
			return middleware.RateLimit(deps.Redis, deps.Config.RateLimit.Rate, routeID, deps.Logger)
		},
	}

	// Apply routes
	wires := []func(chi.Router, *adaptor.Handler, routeDeps) error{
		wireAuth,
		wireHotel,
		wireRoom,
		wireBooking,
		wirePayment,
	}
	for _, wireRoutes := range wires {
		if err := wireRoutes(r, handler, rd); err != nil {
			return nil, fmt.Errorf("wire routes: %w", err)
		}
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r, nil
}
