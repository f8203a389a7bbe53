package request

type AttemptPaymentRequest struct {
	BookingID string  `json:"bookingId" validate:"required,uuid"`
	Method    string  `json:"method" validate:"required,oneof=CARD UPI PAYPAL"`
	CardBrand *string `json:"cardBrand,omitempty" validate:"omitempty,max=30"`
}
