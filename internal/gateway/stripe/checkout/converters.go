package checkout

import (
	"fmt"
	"strconv"

	stripe "github.com/stripe/stripe-go/v79"
	"zapshift/internal/entities"
)

const (
	metadataParcelID   = "parcelId"
	metadataParcelName = "parcelName"
	metadataTrackingID = "trackingId"
)

func toSessionParams(req entities.CheckoutRequest, config Config) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(config.Currency),
					// шлюз считает в минорных единицах
					UnitAmount: stripe.Int64(req.Cost * 100),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ParcelName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(req.SenderEmail),
		SuccessURL:    stripe.String(config.SuccessURL),
		CancelURL:     stripe.String(config.CancelURL),
	}

	params.AddMetadata(metadataParcelID, strconv.FormatInt(req.ParcelID, 10))
	params.AddMetadata(metadataParcelName, req.ParcelName)
	params.AddMetadata(metadataTrackingID, req.TrackingID)

	return params
}

func toConfirmation(sess *stripe.CheckoutSession) (*entities.GatewayConfirmation, error) {
	if sess == nil {
		return nil, fmt.Errorf("empty session")
	}

	parcelID, err := strconv.ParseInt(sess.Metadata[metadataParcelID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", metadataParcelID, err)
	}

	transactionID := sess.ID
	if sess.PaymentIntent != nil {
		transactionID = sess.PaymentIntent.ID
	}

	customerEmail := sess.CustomerEmail
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		customerEmail = sess.CustomerDetails.Email
	}

	return &entities.GatewayConfirmation{
		TransactionID: transactionID,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		CustomerEmail: customerEmail,
		ParcelID:      parcelID,
		ParcelName:    sess.Metadata[metadataParcelName],
		TrackingID:    sess.Metadata[metadataTrackingID],
	}, nil
}
