// Package pubsub is the in-process message bus used to hand work off the
// request path, such as delivering contact form submissions.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "contact.submitted").
	Topic string
	// Payload contains the raw message data, usually JSON.
	Payload []byte
	// Metadata carries request-scoped context such as the request ID.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe registers handler for topic and returns once the subscription is live.
	// Delivery stops when ctx is canceled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
