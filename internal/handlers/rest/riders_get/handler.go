package riders_get

import (
	"encoding/json"
	"net/http"

	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
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
	var filter entities.RiderFilter

	query := r.URL.Query()
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.RiderStatusType(statusStr)
		filter.Status = &status
	}
	if district := query.Get("district"); district != "" {
		filter.District = &district
	}
	if workStatusStr := query.Get("workStatus"); workStatusStr != "" {
		workStatus := entities.WorkStatusType(workStatusStr)
		filter.WorkStatus = &workStatus
	}

	riderEntities, err := h.service.GetRiders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	riderDTOs := make([]dto.Rider, len(riderEntities))
	for i, rd := range riderEntities {
		riderDTOs[i].ID = rd.ID
		riderDTOs[i].Name = rd.Name
		riderDTOs[i].Email = rd.Email
		riderDTOs[i].Phone = rd.Phone
		riderDTOs[i].District = rd.District
		riderDTOs[i].Status = rd.Status.String()
		riderDTOs[i].WorkStatus = rd.WorkStatus.String()
		riderDTOs[i].CreatedAt = rd.CreatedAt
		riderDTOs[i].UpdatedAt = rd.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
