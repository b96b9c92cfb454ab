// Package notify fans session notifications out to live subscribers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/PabloGalante/life-guide/internal/domain"
	"github.com/PabloGalante/life-guide/internal/observability"
)

// Bus publishes notifications on one in-process topic per session.
// Notifications published while nobody listens are dropped.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 16},
			watermill.NewStdLogger(false, false),
		),
	}
}

func topic(id domain.SessionID) string {
	return "notifications." + string(id)
}

// Notify implements domain.Notifier.
func (b *Bus) Notify(ctx context.Context, sessionID domain.SessionID, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := b.pubSub.Publish(topic(sessionID), msg); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Subscribe streams notifications for one session until ctx is done or
// the bus is closed; the returned channel is then closed.
func (b *Bus) Subscribe(ctx context.Context, sessionID domain.SessionID) (<-chan domain.Notification, error) {
	msgs, err := b.pubSub.Subscribe(ctx, topic(sessionID))
	if err != nil {
		return nil, fmt.Errorf("subscribe notifications: %w", err)
	}

	out := make(chan domain.Notification)
	go func() {
		defer close(out)
		log := observability.LoggerFromContext(ctx)

		for msg := range msgs {
			var n domain.Notification
			if err := json.Unmarshal(msg.Payload, &n); err != nil {
				log.Error("dropping malformed notification", "error", err)
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
