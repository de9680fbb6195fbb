package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	natspkg "github.com/piresc/socialclub/internal/pkg/nats"
	"github.com/piresc/socialclub/services/notification"
)

const handleTimeout = 30 * time.Second

// Handler consumes domain events and hands them to the notification usecase
type Handler struct {
	notificationUC notification.NotificationUC
	natsClient     *natspkg.Client
	queueGroup     string
	consumers      []*natspkg.Consumer
}

// NewHandler creates a new NATS handler. Replicas sharing queueGroup split the events.
func NewHandler(notificationUC notification.NotificationUC, natsClient *natspkg.Client, queueGroup string) *Handler {
	return &Handler{
		notificationUC: notificationUC,
		natsClient:     natsClient,
		queueGroup:     queueGroup,
	}
}

// InitConsumers subscribes to every notification subject
func (h *Handler) InitConsumers() error {
	subjects := map[string]natspkg.MessageHandler{
		constants.SubjectPurchasePaid:     h.handlePurchasePaid,
		constants.SubjectAffiliateCreated: h.handleAffiliateCreated,
		constants.SubjectOTPRequested:     h.handleOTPRequested,
		constants.SubjectPasswordReset:    h.handlePasswordReset,
	}
	for subject, handle := range subjects {
		consumer, err := natspkg.NewConsumer(h.natsClient, subject, h.queueGroup, handleTimeout, handle)
		if err != nil {
			h.Close()
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// Close unsubscribes from all subjects
func (h *Handler) Close() error {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop consumer",
				logger.String("subject", consumer.Subject()),
				logger.Err(err))
		}
	}
	h.consumers = nil
	return nil
}

func (h *Handler) handlePurchasePaid(ctx context.Context, data []byte) error {
	var event models.PurchasePaidEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal purchase paid event: %w", err)
	}
	return h.notificationUC.NotifyPurchasePaid(ctx, &event)
}

func (h *Handler) handleAffiliateCreated(ctx context.Context, data []byte) error {
	var event models.AffiliateCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal affiliate created event: %w", err)
	}
	return h.notificationUC.NotifyAffiliateCreated(ctx, &event)
}

func (h *Handler) handleOTPRequested(ctx context.Context, data []byte) error {
	var event models.OTPRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal otp requested event: %w", err)
	}
	return h.notificationUC.NotifyOTPRequested(ctx, &event)
}

func (h *Handler) handlePasswordReset(ctx context.Context, data []byte) error {
	var event models.PasswordResetRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal password reset event: %w", err)
	}
	return h.notificationUC.NotifyPasswordResetRequested(ctx, &event)
}
