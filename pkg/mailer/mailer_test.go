package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func newTestMailer(t *testing.T) *Mailer {
	t.Helper()
	m, err := New(utils.EmailConfig{From: "no-reply@hotel.local"}, zap.NewNop())
	require.NoError(t, err)
	return m
}

func sampleNotice() BookingNotice {
	return BookingNotice{
		To:         "guest@example.com",
		Name:       "Asha",
		Reference:  "HB-20240110-ABC123",
		HotelName:  "Sea View",
		RoomType:   "Deluxe",
		CheckIn:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		Nights:     3,
		TotalPrice: 750000,
		Currency:   "INR",
	}
}

func TestRenderTemplates(t *testing.T) {
	m := newTestMailer(t)
	brand := "Visa"
	payment := PaymentNotice{BookingNotice: sampleNotice(), Method: "CARD", CardBrand: &brand, Amount: 750000}

	body, err := m.Render(bookingReceivedTemplate, sampleNotice())
	require.NoError(t, err)
	assert.Contains(t, body, "HB-20240110-ABC123")
	assert.Contains(t, body, "Sea View")
	assert.Contains(t, body, "Wed Jan 10 2024")
	assert.Contains(t, body, "INR 7,500.00")

	body, err = m.Render(bookingCancelledTemplate, sampleNotice())
	require.NoError(t, err)
	assert.Contains(t, body, "Booking Cancelled")

	body, err = m.Render(paymentSucceededTemplate, payment)
	require.NoError(t, err)
	assert.Contains(t, body, "Card (Visa)")

	payment.Method = "UPI"
	body, err = m.Render(paymentFailedTemplate, payment)
	require.NoError(t, err)
	assert.Contains(t, body, "UPI payment")
	assert.Contains(t, body, "still pending")
}

func TestSendWithoutSMTPOnlyLogs(t *testing.T) {
	m := newTestMailer(t)
	assert.NoError(t, m.BookingReceived(context.Background(), sampleNotice()))

	notice := sampleNotice()
	notice.To = ""
	assert.Error(t, m.BookingReceived(context.Background(), notice))
}

func TestSendUsesDialer(t *testing.T) {
	m := newTestMailer(t)
	fake := &fakeSender{}
	m.dialer = fake

	require.NoError(t, m.BookingCancelled(context.Background(), sampleNotice()))
	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"guest@example.com"}, fake.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Booking cancelled HB-20240110-ABC123"}, fake.sent[0].GetHeader("Subject"))

	fake.err = errors.New("smtp down")
	assert.Error(t, m.BookingCancelled(context.Background(), sampleNotice()))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100000, "1,000.00"},
		{123456789, "1,234,567.89"},
		{-2550, "-25.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.minor))
	}
}
