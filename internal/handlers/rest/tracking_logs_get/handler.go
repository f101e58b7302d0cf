package tracking_logs_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"zapshift/internal/generated/dto"
	"zapshift/internal/service/tracking"
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
	trackingID := mux.Vars(r)["trackingId"]

	entries, err := h.service.GetByTrackingID(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidTrackingID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrLogNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	entryDTOs := make([]dto.TrackingLogEntry, len(entries))
	for i, e := range entries {
		entryDTOs[i].TrackingID = e.TrackingID
		entryDTOs[i].Status = e.Status
		entryDTOs[i].Details = e.Details
		entryDTOs[i].CreatedAt = e.CreatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(entryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
