package usecase

import (
	"context"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Hotel        HotelService
	Room         RoomService
	Availability AvailabilityService
	Booking      BookingService
	Payment      PaymentService

	notify *dispatcher
}

// NewService wires every use case. notifier may be nil, in which case no
// notifications are sent.
func NewService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	notifier Notifier,
	oracle SettlementOracle,
) *Service {
	notify := &dispatcher{
		notifier: notifier,
		repo:     repo,
		currency: config.Payment.Currency,
		log:      log.With(zap.String("service", "notification")),
	}

	return &Service{
		Auth:         NewAuthService(repo.User, config, log),
		User:         NewUserService(repo.User, log),
		Hotel:        NewHotelService(repo, log),
		Room:         NewRoomService(repo, log),
		Availability: NewAvailabilityService(repo, log),
		Booking:      NewBookingService(repo, config, notify, log),
		Payment:      NewPaymentService(repo, config, oracle, notify, log),
		notify:       notify,
	}
}

// DrainNotifications waits for notifications still being sent. Call it on
// shutdown after the HTTP server stopped accepting requests.
func (s *Service) DrainNotifications(ctx context.Context) error {
	return s.notify.wait(ctx)
}
