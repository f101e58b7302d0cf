package parcel

import "zapshift/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:             p.ID,
		TrackingID:     p.TrackingID,
		Name:           p.Name,
		SenderEmail:    p.SenderEmail,
		RiderID:        p.RiderID,
		RiderName:      p.RiderName,
		RiderEmail:     p.RiderEmail,
		Cost:           p.Cost,
		DeliveryStatus: entities.DeliveryStatusType(p.DeliveryStatus),
		PaymentStatus:  entities.PaymentStatusType(p.PaymentStatus),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
