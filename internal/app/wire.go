//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	checkoutGateway "zapshift/internal/gateway/stripe/checkout"
	"zapshift/internal/handlers/rest/parcel_assign_patch"
	"zapshift/internal/handlers/rest/parcel_get"
	"zapshift/internal/handlers/rest/parcel_post"
	"zapshift/internal/handlers/rest/parcel_status_counts_get"
	"zapshift/internal/handlers/rest/parcel_status_patch"
	"zapshift/internal/handlers/rest/parcels_get"
	"zapshift/internal/handlers/rest/payment_checkout_post"
	"zapshift/internal/handlers/rest/payment_success_patch"
	"zapshift/internal/handlers/rest/payments_get"
	"zapshift/internal/handlers/rest/rider_decision_patch"
	"zapshift/internal/handlers/rest/rider_deliveries_per_day_get"
	"zapshift/internal/handlers/rest/rider_post"
	"zapshift/internal/handlers/rest/riders_get"
	"zapshift/internal/handlers/rest/tracking_logs_get"
	"zapshift/internal/handlers/tasks/rider_reconcile"
	"zapshift/internal/pkg/config"
	"zapshift/internal/pkg/factory/tracking_id"

	parcelRepo "zapshift/internal/repository/parcel"
	paymentRepo "zapshift/internal/repository/payment"
	riderRepo "zapshift/internal/repository/rider"
	trackingRepo "zapshift/internal/repository/tracking"
	userRepo "zapshift/internal/repository/user"
	parcelService "zapshift/internal/service/parcel"
	paymentService "zapshift/internal/service/payment"
	riderService "zapshift/internal/service/rider"
	trackingService "zapshift/internal/service/tracking"
	userService "zapshift/internal/service/user"

	"zapshift/pkg/background"
	"zapshift/pkg/logger"
	"zapshift/pkg/querier"
	"zapshift/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceRider      ServiceRider
	ServicePayment    ServicePayment
	ServiceTracking   ServiceTracking
	ServiceUser       ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_get.Service
	parcels_get.Service
	parcel_assign_patch.Service
	parcel_status_patch.Service
	parcel_status_counts_get.Service
	rider_deliveries_per_day_get.Service
}

type ServiceRider interface {
	rider_post.Service
	riders_get.Service
	rider_decision_patch.Service
	parcel_assign_patch.RiderService
}

type ServicePayment interface {
	payment_checkout_post.Service
	payment_success_patch.Service
	payments_get.Service
}

type ServiceTracking interface {
	tracking_logs_get.Service
}

type ServiceUser interface {
	rider_decision_patch.UserService
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideParcelRepository,
		provideRiderRepository,
		providePaymentRepository,
		provideTrackingRepository,
		provideUserRepository,

		tracking_id.New,
		provideServiceTracking,
		provideServiceUser,
		provideServiceRider,
		provideServiceParcel,

		provideCheckoutClient,
		provideCheckoutGateway,
		provideServicePayment,

		provideRiderReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.StateMachine)),
		wire.Bind(new(ServiceRider), new(*riderService.Manager)),
		wire.Bind(new(ServicePayment), new(*paymentService.Engine)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Log)),
		wire.Bind(new(ServiceUser), new(*userService.Service)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.RiderService), new(*riderService.Manager)),
		wire.Bind(new(parcelService.TrackingLog), new(*trackingService.Log)),
		wire.Bind(new(parcelService.TrackingIDFactory), new(*tracking_id.TrackingIDFactory)),
		wire.Bind(new(paymentService.Gateway), new(*checkoutGateway.CheckoutGateway)),
		wire.Bind(new(paymentService.TrackingLog), new(*trackingService.Log)),
		wire.Bind(new(riderService.UserService), new(*userService.Service)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(rider_reconcile.Service), new(*riderService.Manager)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Engine
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		providePaymentRepository,
		provideTrackingRepository,

		provideServiceTracking,

		provideCheckoutClient,
		provideCheckoutGateway,
		provideServicePayment,

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*checkoutGateway.CheckoutGateway)),
		wire.Bind(new(paymentService.TrackingLog), new(*trackingService.Log)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceTracking(repository trackingService.Repository) *trackingService.Log {
	return trackingService.New(repository)
}

func provideServiceUser(repository userService.Repository) *userService.Service {
	return userService.New(repository)
}

func provideServiceRider(
	repository riderService.Repository,
	users riderService.UserService,
	txManager riderService.TxManager,
) *riderService.Manager {
	return riderService.New(repository, users, txManager)
}

func provideServiceParcel(
	repository parcelService.Repository,
	riders parcelService.RiderService,
	trackingLog parcelService.TrackingLog,
	idFactory parcelService.TrackingIDFactory,
	txManager parcelService.TxManager,
) *parcelService.StateMachine {
	return parcelService.New(repository, riders, trackingLog, idFactory, txManager)
}

func provideServicePayment(
	gateway paymentService.Gateway,
	repository paymentService.Repository,
	parcels paymentService.ParcelRepository,
	trackingLog paymentService.TrackingLog,
	txManager paymentService.TxManager,
) *paymentService.Engine {
	return paymentService.New(gateway, repository, parcels, trackingLog, txManager)
}

func provideCheckoutClient(cfg *config.Config) *checkoutGateway.APIClient {
	return checkoutGateway.NewAPIClient(cfg.Stripe.SecretKey)
}

func provideCheckoutGateway(client *checkoutGateway.APIClient, cfg *config.Config) *checkoutGateway.CheckoutGateway {
	return checkoutGateway.New(client, checkoutGateway.Config{
		Currency:   cfg.Stripe.Currency,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	})
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.RidersReconcileInterval)
}

func provideRiderReconcileTask(
	log logger.Logger,
	riders rider_reconcile.Service,
	interval ReconcileInterval,
) *rider_reconcile.RiderReconcile {
	return rider_reconcile.NewRiderReconcile(log, riders, time.Duration(interval))
}

func provideTaskList(
	riderReconcileTask *rider_reconcile.RiderReconcile,
) []background.Task {
	return []background.Task{
		riderReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
