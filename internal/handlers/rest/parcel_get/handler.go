package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"zapshift/internal/generated/dto"
	"zapshift/internal/service/parcel"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrInvalidParcelID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTO := dto.Parcel{
		ID:             parcelEntity.ID,
		TrackingID:     parcelEntity.TrackingID,
		Name:           parcelEntity.Name,
		SenderEmail:    parcelEntity.SenderEmail,
		RiderID:        parcelEntity.RiderID,
		RiderName:      parcelEntity.RiderName,
		RiderEmail:     parcelEntity.RiderEmail,
		Cost:           parcelEntity.Cost,
		DeliveryStatus: parcelEntity.DeliveryStatus.String(),
		PaymentStatus:  parcelEntity.PaymentStatus.String(),
		CreatedAt:      parcelEntity.CreatedAt,
		UpdatedAt:      parcelEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
