package payment_success_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"zapshift/internal/generated/dto"
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

// ServeHTTP сверяет оплаченную сессию. Повторный вызов с тем же sessionId
// отвечает 200 с alreadyProcessed=true, без новых изменений.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.ReconcilePayment(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSessionID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrPaymentNotCompleted):
			w.WriteHeader(http.StatusPaymentRequired)
		case errors.Is(err, payment.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, payment.ErrGateway):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ReconcileResponse{
		TransactionID:    result.TransactionID,
		TrackingID:       result.TrackingID,
		AlreadyProcessed: result.AlreadyProcessed,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
