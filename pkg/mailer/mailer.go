// Package mailer renders booking and payment emails and sends them over SMTP.
// Without an SMTP host it only logs what would have been sent.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	bookingReceivedTemplate  = "booking_received.html"
	bookingCancelledTemplate = "booking_cancelled.html"
	paymentSucceededTemplate = "payment_succeeded.html"
	paymentFailedTemplate    = "payment_failed.html"
)

// BookingNotice carries everything the booking emails print.
type BookingNotice struct {
	To         string
	Name       string
	Reference  string
	HotelName  string
	RoomType   string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice int64
	Currency   string
}

type PaymentNotice struct {
	BookingNotice
	Method    string
	CardBrand *string
	Amount    int64
}

// MethodLabel renders "Card (Visa)", "UPI" or "PayPal".
func (p PaymentNotice) MethodLabel() string {
	switch p.Method {
	case "CARD":
		if p.CardBrand != nil && *p.CardBrand != "" {
			return fmt.Sprintf("Card (%s)", *p.CardBrand)
		}
		return "Card"
	case "PAYPAL":
		return "PayPal"
	default:
		return p.Method
	}
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	from      string
	dialer    sender
	templates *template.Template
	log       *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) (*Mailer, error) {
	templates, err := template.New("mail").Funcs(template.FuncMap{
		"date":  func(t time.Time) string { return t.UTC().Format("Mon Jan 02 2006") },
		"money": FormatAmount,
		"year":  func() int { return time.Now().Year() },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	m := &Mailer{
		from:      config.From,
		templates: templates,
		log:       log.With(zap.String("component", "mailer")),
	}

	if config.Host != "" {
		dialer := gomail.NewDialer(config.Host, config.Port, config.User, config.Password)
		dialer.TLSConfig = &tls.Config{ServerName: config.Host}
		m.dialer = dialer
	} else {
		m.log.Warn("SMTP_HOST not set, emails will only be logged")
	}

	return m, nil
}

func (m *Mailer) BookingReceived(ctx context.Context, notice BookingNotice) error {
	return m.send(ctx, notice.To, "Booking received "+notice.Reference, bookingReceivedTemplate, notice)
}

func (m *Mailer) BookingCancelled(ctx context.Context, notice BookingNotice) error {
	return m.send(ctx, notice.To, "Booking cancelled "+notice.Reference, bookingCancelledTemplate, notice)
}

func (m *Mailer) PaymentSucceeded(ctx context.Context, notice PaymentNotice) error {
	return m.send(ctx, notice.To, "Payment successful "+notice.Reference, paymentSucceededTemplate, notice)
}

func (m *Mailer) PaymentFailed(ctx context.Context, notice PaymentNotice) error {
	return m.send(ctx, notice.To, "Payment failed "+notice.Reference, paymentFailedTemplate, notice)
}

// Render executes a named template into an HTML body.
func (m *Mailer) Render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return body.String(), nil
}

func (m *Mailer) send(ctx context.Context, to, subject, templateName string, data any) error {
	if to == "" {
		return fmt.Errorf("send %q: recipient is empty", subject)
	}

	body, err := m.Render(templateName, data)
	if err != nil {
		return err
	}

	if m.dialer == nil {
		m.log.Info("Email not sent (no SMTP configured)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	// gomail has no context support; give up on the result once ctx is done.
	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			m.log.Error("Failed to send email",
				zap.Error(err),
				zap.String("to", to),
				zap.String("subject", subject),
			)
			return fmt.Errorf("send email to %s: %w", to, err)
		}
	case <-ctx.Done():
		return fmt.Errorf("send email to %s: %w", to, ctx.Err())
	}

	m.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// FormatAmount prints minor units as a decimal amount, e.g. 250050 -> "2,500.50".
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	whole := fmt.Sprintf("%d", minor/100)
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	return fmt.Sprintf("%s%s.%02d", sign, grouped.String(), minor%100)
}
