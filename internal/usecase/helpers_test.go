package usecase

import (
	"context"
	"sync"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/memory"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
	to     []string
}

func (n *recordingNotifier) record(kind, to string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, kind)
	n.to = append(n.to, to)
	return nil
}

func (n *recordingNotifier) BookingReceived(ctx context.Context, notice mailer.BookingNotice) error {
	return n.record("booking_received", notice.To)
}

func (n *recordingNotifier) BookingCancelled(ctx context.Context, notice mailer.BookingNotice) error {
	return n.record("booking_cancelled", notice.To)
}

func (n *recordingNotifier) PaymentSucceeded(ctx context.Context, notice mailer.PaymentNotice) error {
	return n.record("payment_succeeded", notice.To)
}

func (n *recordingNotifier) PaymentFailed(ctx context.Context, notice mailer.PaymentNotice) error {
	return n.record("payment_failed", notice.To)
}

func (n *recordingNotifier) has(kind string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, e := range n.events {
		if e == kind {
			return true
		}
	}
	return false
}

// switchableOracle settles with whatever status was set last.
type switchableOracle struct {
	mu     sync.Mutex
	status entity.PaymentStatus
}

func (o *switchableOracle) Set(status entity.PaymentStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = status
}

func (o *switchableOracle) Settle(ctx context.Context, attempt PaymentAttempt) entity.PaymentStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

type fixture struct {
	repo     *repository.Repository
	service  *Service
	notifier *recordingNotifier
	oracle   *switchableOracle
	guest    *entity.User
	admin    *entity.User
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:     utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Payment: utils.PaymentConfig{SuccessRate: 1, Currency: "INR"},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:     memory.NewRepository(),
		notifier: &recordingNotifier{},
		oracle:   &switchableOracle{status: entity.PaymentStatusSuccess},
	}
	f.service = NewService(f.repo, testConfig(), zap.NewNop(), f.notifier, f.oracle)
	f.guest = f.addUser(t, "guest@example.com", entity.RoleUser)
	f.admin = f.addUser(t, "admin@example.com", entity.RoleAdmin)
	return f
}

func (f *fixture) addUser(t *testing.T, email string, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Name:  "Test " + string(role),
		Email: email,
		Role:  role,
	}
	require.NoError(t, f.repo.User.Create(context.Background(), user))
	return user
}

// addRoom creates an active hotel with one room type.
func (f *fixture) addRoom(t *testing.T, totalRooms int, pricePerNight int64) *response.RoomResponse {
	t.Helper()
	ctx := context.Background()

	hotel, err := f.service.Hotel.CreateHotel(ctx, &request.CreateHotelRequest{
		Name:     "Sea View",
		Location: "Goa",
	})
	require.NoError(t, err)

	room, err := f.service.Room.CreateRoom(ctx, &request.CreateRoomRequest{
		HotelID:       hotel.ID,
		Type:          "Deluxe",
		PricePerNight: pricePerNight,
		MaxGuests:     2,
		TotalRooms:    totalRooms,
	})
	require.NoError(t, err)
	return room
}

func (f *fixture) book(t *testing.T, userID uuid.UUID, roomID, checkIn, checkOut string) *response.BookingResponse {
	t.Helper()
	booking, err := f.service.Booking.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	require.NoError(t, err)
	return booking
}

func (f *fixture) status(t *testing.T, bookingID string) entity.BookingStatus {
	t.Helper()
	booking, err := f.repo.Booking.FindByID(context.Background(), uuid.MustParse(bookingID))
	require.NoError(t, err)
	require.NotNil(t, booking)
	return booking.Status
}
