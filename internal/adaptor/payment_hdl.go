package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// AttemptPayment handles POST /api/payments (protected).
// A declined attempt is still recorded and answered with 402 and the payment.
func (h *PaymentHandler) AttemptPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AttemptPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.AttemptPayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "attempt payment")
		return
	}

	if !result.Succeeded {
		utils.ResponsePaymentRequired(w, "Payment failed, please try again", result.PaymentAttemptResponse)
		return
	}

	utils.ResponseSuccess(w, "Payment successful, booking confirmed", result.PaymentAttemptResponse)
}

// GetUserPayments handles GET /api/payments/me (protected)
func (h *PaymentHandler) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := paginationFromQuery(r)
	payments, err := h.service.GetUserPayments(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err, "get user payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetAllPayments handles GET /api/payments/admin/all
func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	page := paginationFromQuery(r)
	payments, err := h.service.GetAllPayments(r.Context(), &page)
	if err != nil {
		handleServiceError(w, h.log, err, "get all payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
