package payment

import "zapshift/internal/entities"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		ParcelID:      p.ParcelID,
		ParcelName:    p.ParcelName,
		TrackingID:    p.TrackingID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		PaymentStatus: p.PaymentStatus,
		PaidAt:        p.PaidAt,
	}
}
