package entity

import (
	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodPayPal PaymentMethod = "PAYPAL"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment is one settlement attempt. Rows are never updated.
type Payment struct {
	BaseSimple
	BookingID uuid.UUID     `db:"booking_id"`
	Amount    int64         `db:"amount"`
	Method    PaymentMethod `db:"method"`
	CardBrand *string       `db:"card_brand"`
	Status    PaymentStatus `db:"status"`
}
