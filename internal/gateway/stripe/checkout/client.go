package checkout

import (
	stripe "github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"
)

// APIClient узкая обертка над stripe-go, чтобы шлюз мокался в тестах.
type APIClient struct {
	api *stripeclient.API
}

func NewAPIClient(secretKey string) *APIClient {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)
	return &APIClient{api: api}
}

func (c *APIClient) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(params)
}

func (c *APIClient) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.Get(id, params)
}
