package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/memory"
	"hotel-booking/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gatedNotifier holds every send until release is closed.
type gatedNotifier struct {
	recordingNotifier
	release chan struct{}
}

func (n *gatedNotifier) BookingReceived(ctx context.Context, notice mailer.BookingNotice) error {
	<-n.release
	return n.recordingNotifier.BookingReceived(ctx, notice)
}

func TestDrainNotificationsWaitsForSends(t *testing.T) {
	f := newFixture(t)
	room := f.addRoom(t, 1, 1000)

	f.book(t, f.guest.ID, room.ID, "2024-01-10", "2024-01-12")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.service.DrainNotifications(ctx))
	assert.True(t, f.notifier.has("booking_received"))
}

func TestDrainNotificationsGivesUpAtDeadline(t *testing.T) {
	notifier := &gatedNotifier{release: make(chan struct{})}
	repo := memory.NewRepository()
	service := NewService(repo, testConfig(), zap.NewNop(), notifier, &switchableOracle{status: entity.PaymentStatusSuccess})

	f := &fixture{repo: repo, service: service, notifier: &notifier.recordingNotifier}
	guest := f.addUser(t, "guest@example.com", entity.RoleUser)
	room := f.addRoom(t, 1, 1000)
	f.book(t, guest.ID, room.ID, "2024-01-10", "2024-01-12")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, service.DrainNotifications(ctx), context.DeadlineExceeded)

	close(notifier.release)
	require.NoError(t, service.DrainNotifications(context.Background()))
	assert.True(t, notifier.has("booking_received"))
}

func TestDrainNotificationsWithoutNotifier(t *testing.T) {
	service := NewService(memory.NewRepository(), testConfig(), zap.NewNop(), nil, &switchableOracle{})
	assert.NoError(t, service.DrainNotifications(context.Background()))
}
