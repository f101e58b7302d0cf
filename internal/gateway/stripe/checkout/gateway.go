package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	stripe "github.com/stripe/stripe-go/v79"
	"zapshift/internal/entities"
	paymentservice "zapshift/internal/service/payment"
	retrierconfig "zapshift/pkg/retrier"
	"zapshift/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "stripe"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

type CheckoutGateway struct {
	client  client
	retrier retrier
	config  Config
}

func New(client client, config Config) *CheckoutGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &CheckoutGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		config:  config,
	}
}

func (g *CheckoutGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutSession, error) {
	params := toSessionParams(req, g.config)
	params.Context = ctx

	var sess *stripe.CheckoutSession

	err := g.executeWithMetrics(ctx, "NewSession", func(ctx context.Context) error {
		var err error
		sess, err = g.client.NewSession(params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway checkout, new session: %w: %w", paymentservice.ErrGateway, err)
	}

	return &entities.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

func (g *CheckoutGateway) ResolveSession(ctx context.Context, sessionID string) (*entities.GatewayConfirmation, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	var sess *stripe.CheckoutSession

	err := g.executeWithMetrics(ctx, "GetSession", func(ctx context.Context) error {
		var err error
		sess, err = g.client.GetSession(sessionID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway checkout, get session: %s: %w: %w", sessionID, paymentservice.ErrGateway, err)
	}

	confirmation, err := toConfirmation(sess)
	if err != nil {
		return nil, fmt.Errorf("gateway checkout, session %s: %w: %w", sessionID, paymentservice.ErrGateway, err)
	}

	return confirmation, nil
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}

	switch {
	case stripeErr.HTTPStatusCode == 429:
		return true
	case stripeErr.HTTPStatusCode >= 500:
		return true
	default:
		return false
	}
}

func (g *CheckoutGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return strconv.Itoa(stripeErr.HTTPStatusCode)
	}
	return "unknown"
}
