package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to its payload type so publishers and
// subscribers cannot disagree about the shape of a message.
type Event[T any] struct {
	topicName string
}

// NewEvent declares a typed topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		Payload:  data,
		Metadata: metadata,
	})
}

// Subscribe registers a handler that receives decoded payloads for event.
// Payloads that fail to decode are reported as handler errors.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(context.Context, T, Message) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s: %w", event.Name(), err)
		}
		return handler(ctx, payload, msg)
	})
}
