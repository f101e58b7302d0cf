package rider_decision_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/pkg/middlewares/auth"
	"zapshift/internal/service/rider"
	"zapshift/pkg/logger"
)

type Handler struct {
	log         handlerLogger
	service     Service
	userService UserService
}

func New(log handlerLogger, service Service, userService UserService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		service:     service,
		userService: userService,
	}
}

// ServeHTTP применяет решение по заявке райдера. Только для админов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterEmail, ok := auth.EmailFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	isAdmin, err := h.userService.IsAdmin(r.Context(), requesterEmail)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !isAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var decisionDTO dto.RiderDecision
	err = json.NewDecoder(r.Body).Decode(&decisionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	decided, err := h.service.DecideRider(r.Context(), id, entities.RiderStatusType(decisionDTO.Status), "")
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	riderDTO := dto.Rider{
		ID:         decided.ID,
		Name:       decided.Name,
		Email:      decided.Email,
		Phone:      decided.Phone,
		District:   decided.District,
		Status:     decided.Status.String(),
		WorkStatus: decided.WorkStatus.String(),
		CreatedAt:  decided.CreatedAt,
		UpdatedAt:  decided.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
