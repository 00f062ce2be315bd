package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/boz-concept/shop-service/internal/config"
	"github.com/boz-concept/shop-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
	n.dispatcher.Subscribe(events.EventOrderStatusChanged, n.handleOrderStatusChanged)
	n.dispatcher.Subscribe(events.EventMembershipRequested, n.handleMembershipEvent)
	n.dispatcher.Subscribe(events.EventMembershipApproved, n.handleMembershipEvent)
	n.dispatcher.Subscribe(events.EventMembershipRejected, n.handleMembershipEvent)
	n.dispatcher.Subscribe(events.EventMembershipExtended, n.handleMembershipEvent)
	n.dispatcher.Subscribe(events.EventMembershipRevoked, n.handleMembershipEvent)
}

func (n *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderCreated", zap.String("order_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleOrderStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderStatusChanged", zap.String("order_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMembershipEvent(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.String("user_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
