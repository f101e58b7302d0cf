package parcel_assign_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"zapshift/internal/generated/dto"
	"zapshift/internal/service/parcel"
	"zapshift/internal/service/rider"
	"zapshift/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	service      Service
	riderService RiderService
}

func New(log handlerLogger, service Service, riderService RiderService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		riderService: riderService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	parcelID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignDTO dto.ParcelAssign
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderEntity, err := h.riderService.GetRider(r.Context(), assignDTO.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	assigned, err := h.service.AssignRider(r.Context(), parcelID, riderEntity.ID, riderEntity.Name, riderEntity.Email)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrAlreadyDelivered):
			w.WriteHeader(http.StatusGone)
		case errors.Is(err, parcel.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTO := dto.Parcel{
		ID:             assigned.ID,
		TrackingID:     assigned.TrackingID,
		Name:           assigned.Name,
		SenderEmail:    assigned.SenderEmail,
		RiderID:        assigned.RiderID,
		RiderName:      assigned.RiderName,
		RiderEmail:     assigned.RiderEmail,
		Cost:           assigned.Cost,
		DeliveryStatus: assigned.DeliveryStatus.String(),
		PaymentStatus:  assigned.PaymentStatus.String(),
		CreatedAt:      assigned.CreatedAt,
		UpdatedAt:      assigned.UpdatedAt,
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
