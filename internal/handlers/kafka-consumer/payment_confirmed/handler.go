package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	paymentservice "zapshift/internal/service/payment"
	"zapshift/pkg/logger"
)

// confirmedEvent событие payment.checkout.completed от платежного контура.
type confirmedEvent struct {
	SessionID string `json:"sessionId"`
}

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.checkout.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.checkout.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim.
// Сбои шлюза не коммитятся: сверка идемпотентна, повтор безопасен.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.checkout.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("session", event.SessionID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.checkout.completed processing")

	result, err := h.paymentService.ReconcilePayment(ctx, event.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.checkout.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrGateway):
			// временный сбой шлюза, оффсет не двигаем
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.checkout.completed handler gateway failure, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrPaymentNotCompleted):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.checkout.completed handler session is not paid")

		case errors.Is(err, paymentservice.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.checkout.completed handler parcel left the payable state")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.checkout.completed handler failed to reconcile session")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("session", event.SessionID),
		logger.NewField("transaction", result.TransactionID),
		logger.NewField("already_processed", result.AlreadyProcessed),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.checkout.completed: processed")

	sess.MarkMessage(message, "")
	return false
}
