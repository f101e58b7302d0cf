package payments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"zapshift/internal/generated/dto"
	"zapshift/internal/pkg/middlewares/auth"
	"zapshift/internal/service/payment"
	"zapshift/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterEmail, ok := auth.EmailFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	customerEmail := r.URL.Query().Get("email")

	payments, err := h.service.History(r.Context(), requesterEmail, customerEmail)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	paymentDTOs := make([]dto.Payment, len(payments))
	for i, p := range payments {
		paymentDTOs[i].TransactionID = p.TransactionID
		paymentDTOs[i].ParcelID = p.ParcelID
		paymentDTOs[i].ParcelName = p.ParcelName
		paymentDTOs[i].TrackingID = p.TrackingID
		paymentDTOs[i].Amount = p.Amount
		paymentDTOs[i].Currency = p.Currency
		paymentDTOs[i].CustomerEmail = p.CustomerEmail
		paymentDTOs[i].PaymentStatus = p.PaymentStatus
		paymentDTOs[i].PaidAt = p.PaidAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(paymentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
