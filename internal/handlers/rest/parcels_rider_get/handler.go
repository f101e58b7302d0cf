package parcels_rider_get

import (
	"encoding/json"
	"net/http"

	"zapshift/internal/entities"
	"zapshift/internal/generated/dto"
	"zapshift/internal/pkg/middlewares/auth"
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

// ServeHTTP отдает активные посылки райдера: доставленные не показываются.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter := entities.ParcelFilter{
		RiderEmail:       &email,
		ExcludeDelivered: true,
	}

	parcelEntities, err := h.service.GetParcels(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	parcelDTOs := make([]dto.Parcel, len(parcelEntities))
	for i, p := range parcelEntities {
		parcelDTOs[i].ID = p.ID
		parcelDTOs[i].TrackingID = p.TrackingID
		parcelDTOs[i].Name = p.Name
		parcelDTOs[i].SenderEmail = p.SenderEmail
		parcelDTOs[i].RiderID = p.RiderID
		parcelDTOs[i].RiderName = p.RiderName
		parcelDTOs[i].RiderEmail = p.RiderEmail
		parcelDTOs[i].Cost = p.Cost
		parcelDTOs[i].DeliveryStatus = p.DeliveryStatus.String()
		parcelDTOs[i].PaymentStatus = p.PaymentStatus.String()
		parcelDTOs[i].CreatedAt = p.CreatedAt
		parcelDTOs[i].UpdatedAt = p.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
