package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentResult describes a recorded attempt. A declined payment is a result,
// not an error: the booking stays PENDING and can be paid again.
type PaymentResult struct {
	response.PaymentAttemptResponse
	Succeeded bool
}

type PaymentService interface {
	AttemptPayment(ctx context.Context, userID uuid.UUID, req *request.AttemptPaymentRequest) (*PaymentResult, error)
	GetUserPayments(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)

	// Admin endpoints
	GetAllPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
}

type paymentService struct {
	repo     *repository.Repository
	oracle   SettlementOracle
	notify   *dispatcher
	currency string
	log      *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	config *utils.Config,
	oracle SettlementOracle,
	notify *dispatcher,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo:     repo,
		oracle:   oracle,
		notify:   notify,
		currency: config.Payment.Currency,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) AttemptPayment(ctx context.Context, userID uuid.UUID, req *request.AttemptPaymentRequest) (*PaymentResult, error) {
	// 1. Validate request
	if err := validateRequest(req); err != nil {
		s.log.Warn("Payment validation failed", zap.Error(err))
		return nil, err
	}

	bookingID, err := parseID(req.BookingID, "booking ID")
	if err != nil {
		return nil, err
	}

	// 2. Only the owner may pay, and only while PENDING
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("find booking %s: %w", req.BookingID, err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, req.BookingID)
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking %s is %s and cannot be paid", ErrInvalidState, req.BookingID, booking.Status)
	}

	method := entity.PaymentMethod(req.Method)
	var cardBrand *string
	if method == entity.PaymentMethodCard && req.CardBrand != nil && strings.TrimSpace(*req.CardBrand) != "" {
		brand := strings.TrimSpace(*req.CardBrand)
		cardBrand = &brand
	}

	// 3. Settle outside any lock
	status := s.oracle.Settle(ctx, PaymentAttempt{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Method:    method,
		CardBrand: cardBrand,
	})

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Method:    method,
		CardBrand: cardBrand,
		Status:    status,
	}

	// 4. Record the attempt; the repository re-checks PENDING under the booking lock
	updated, err := s.repo.Payment.RecordAttempt(ctx, payment)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking %s changed while paying", ErrInvalidState, req.BookingID)
		}
		s.log.Error("Failed to record payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("record payment: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, req.BookingID)
	}

	succeeded := status == entity.PaymentStatusSuccess
	s.log.Info("Payment attempted",
		zap.String("booking_id", req.BookingID),
		zap.String("payment_id", payment.ID.String()),
		zap.String("method", string(method)),
		zap.Int64("amount", payment.Amount),
		zap.Bool("succeeded", succeeded),
	)

	s.notify.PaymentResult(*updated, *payment)

	bookingResp := response.BookingToResponse(updated, s.currency)
	room, hotel := newBookingLookup(s.repo).roomAndHotel(ctx, updated.RoomID)
	bookingResp.Room = response.RoomSummary(room, hotel)

	return &PaymentResult{
		PaymentAttemptResponse: response.PaymentAttemptResponse{
			Payment: response.PaymentToResponse(payment, s.currency),
			Booking: bookingResp,
		},
		Succeeded: succeeded,
	}, nil
}

func (s *paymentService) GetUserPayments(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	limit := req.Limit()

	payments, err := s.repo.Payment.FindByUserID(ctx, userID, limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get user payments", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user payments: %w", err)
	}

	total, err := s.repo.Payment.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user payments", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count user payments: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(payments), req.PageNumber(), limit, total), nil
}

func (s *paymentService) GetAllPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	limit := req.Limit()

	payments, err := s.repo.Payment.FindAll(ctx, limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get payments", zap.Error(err))
		return nil, fmt.Errorf("get payments: %w", err)
	}

	total, err := s.repo.Payment.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count payments", zap.Error(err))
		return nil, fmt.Errorf("count payments: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(payments), req.PageNumber(), limit, total), nil
}

func (s *paymentService) toResponses(payments []*entity.Payment) []response.PaymentResponse {
	data := make([]response.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		data = append(data, response.PaymentToResponse(payment, s.currency))
	}
	return data
}
