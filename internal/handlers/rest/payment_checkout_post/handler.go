package payment_checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var checkoutDTO dto.CheckoutCreate
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.service.CreateCheckout(r.Context(), checkoutDTO.ParcelID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidParcelID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrGateway):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutResponse{
		SessionID: session.SessionID,
		URL:       session.URL,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
