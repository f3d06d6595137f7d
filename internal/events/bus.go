package events

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/rewardsbot/internal/events Publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topics
const (
	TopicTierAchieved = "economy.tier.achieved"
	TopicRoleExpired  = "economy.role.expired"

	TopicPurchaseRecorded = "economy.purchase.recorded"
)

// Publisher emits economy events
type Publisher interface {
	// Publish encodes payload as JSON and sends it on topic
	Publish(ctx context.Context, topic string, payload any) error
}

// Subscriber delivers messages of a topic to a handler
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
}

// Handler processes one decoded message
type Handler func(ctx context.Context, msg *message.Message) error

// Bus is an in-process pub/sub backed by a watermill go channel
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// New creates an in-process bus
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, watermill.NewSlogLogger(logger))

	return &Bus{
		pubsub: pubsub,
		logger: logger,
	}
}

// Publish sends payload to every subscriber of topic. Without subscribers it is dropped.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)

	b.logger.DebugContext(ctx, "Publishing message",
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID))

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	return nil
}

// Subscribe runs handler for every message on topic until ctx ends or the bus closes.
// Delivery is best-effort: handler errors are logged and the message is acked anyway.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	b.logger.InfoContext(ctx, "Subscription started", slog.String("topic", topic))

	go func() {
		for msg := range messages {
			if err := handler(ctx, msg); err != nil {
				b.logger.WarnContext(ctx, "Handler error",
					slog.String("topic", topic),
					slog.String("message_id", msg.UUID),
					slog.Any("error", err))
			}
			msg.Ack()
		}
	}()

	return nil
}

// Close stops all subscriptions
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Decode unmarshals a message payload
func Decode(msg *message.Message, v any) error {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("failed to decode message %s: %w", msg.UUID, err)
	}
	return nil
}
