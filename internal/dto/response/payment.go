package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"bookingId"`
	Amount    int64                `json:"amount"`
	Currency  string               `json:"currency"`
	Method    entity.PaymentMethod `json:"method"`
	CardBrand *string              `json:"cardBrand"`
	Status    entity.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

// PaymentAttemptResponse is returned for both outcomes of a payment attempt.
type PaymentAttemptResponse struct {
	Payment PaymentResponse `json:"payment"`
	Booking BookingResponse `json:"booking"`
}

func PaymentToResponse(payment *entity.Payment, currency string) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Amount:    payment.Amount,
		Currency:  currency,
		Method:    payment.Method,
		CardBrand: payment.CardBrand,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}
}
