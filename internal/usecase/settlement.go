package usecase

import (
	"context"
	"math/rand/v2"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

type PaymentAttempt struct {
	BookingID uuid.UUID
	Amount    int64
	Method    entity.PaymentMethod
	CardBrand *string
}

// SettlementOracle decides the outcome of a payment attempt. A real gateway plugs in here.
type SettlementOracle interface {
	Settle(ctx context.Context, attempt PaymentAttempt) entity.PaymentStatus
}

// SettlementFunc adapts a plain function to SettlementOracle.
type SettlementFunc func(ctx context.Context, attempt PaymentAttempt) entity.PaymentStatus

func (f SettlementFunc) Settle(ctx context.Context, attempt PaymentAttempt) entity.PaymentStatus {
	return f(ctx, attempt)
}

// RandomSettlement succeeds with probability SuccessRate.
type RandomSettlement struct {
	SuccessRate float64
}

func (r RandomSettlement) Settle(ctx context.Context, attempt PaymentAttempt) entity.PaymentStatus {
	if rand.Float64() < r.SuccessRate {
		return entity.PaymentStatusSuccess
	}
	return entity.PaymentStatusFailed
}
