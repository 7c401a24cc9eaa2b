package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/events"
)

// EventPublisher forwards serialized events to an external channel.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService fans staff change events out to logs and, when a
// publisher is configured, to a pub/sub channel.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  EventPublisher
	channel    string
	logger     *zap.Logger
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(dispatcher events.Dispatcher, publisher EventPublisher, channel string, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		channel:    channel,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffCreated, n.handleStaffChanged)
	n.dispatcher.Subscribe(events.EventStaffUpdated, n.handleStaffChanged)
	n.dispatcher.Subscribe(events.EventStaffDeleted, n.handleStaffChanged)
}

func (n *NotificationService) handleStaffChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffChanged",
		zap.String("event_type", string(event.Type)),
		zap.Int64("staff_id", event.StaffID),
		zap.String("event_id", event.ID))
	return n.forward(ctx, event)
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) error {
	if n.publisher == nil || n.channel == "" {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := n.publisher.Publish(ctx, n.channel, payload); err != nil {
		return err
	}
	n.logger.Debug("staff event published",
		zap.String("channel", n.channel),
		zap.String("event_id", event.ID))
	return nil
}
