package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/service/rider"
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
	var riderCreateDTO dto.RiderCreate
	err := json.NewDecoder(r.Body).Decode(&riderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderModifyEntity := entities.RiderModify{
		Name:     &riderCreateDTO.Name,
		Email:    &riderCreateDTO.Email,
		Phone:    &riderCreateDTO.Phone,
		District: &riderCreateDTO.District,
	}

	id, err := h.service.CreateRider(r.Context(), riderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RiderCreateResponse{
		ID: id,
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
