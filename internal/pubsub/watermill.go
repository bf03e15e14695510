package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// WatermillBridge implements Publisher and Subscriber on top of watermill's GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

// metaKeyTopic carries Message.Topic through watermill's metadata.
const metaKeyTopic = "topic"

// NewWatermillBridge initializes an in-memory bus. A nil tracer disables tracing.
func NewWatermillBridge(tracer trace.Tracer) *WatermillBridge {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(tracerName)
	}
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	return &WatermillBridge{
		pub:    &tracingPublisher{publisher: goChannel, tracer: tracer},
		sub:    goChannel,
		tracer: tracer,
	}
}

func toWatermill(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(ctx)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, toWatermill(ctx, msg))
}

// Subscribe implements the Subscriber interface. Messages are handled on a
// background goroutine. A handler error is logged and the message is still
// acked, since GoChannel redelivers nacked messages without limit.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			if err := wb.process(ctx, wmMsg, handler); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

func (wb *WatermillBridge) process(ctx context.Context, wmMsg *message.Message, handler Handler) error {
	msg := fromWatermill(wmMsg)

	spanCtx, span := wb.tracer.Start(ctx, "pubsub.process."+msg.Topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(messageAttributes("process", msg.Topic, wmMsg)...),
	)
	defer span.End()

	if err := handler(spanCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Close shuts the bridge down. Active subscriptions end their loops.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}

// tracingPublisher starts a producer span per message before handing it to the
// wrapped publisher.
type tracingPublisher struct {
	publisher message.Publisher
	tracer    trace.Tracer
}

func (p *tracingPublisher) Publish(topic string, messages ...*message.Message) error {
	spans := make([]trace.Span, 0, len(messages))
	for _, msg := range messages {
		spanCtx, span := p.tracer.Start(msg.Context(), fmt.Sprintf("pubsub.publish.%s", topic),
			trace.WithSpanKind(trace.SpanKindProducer),
			trace.WithAttributes(messageAttributes("publish", topic, msg)...),
		)
		msg.SetContext(spanCtx)
		spans = append(spans, span)
	}

	err := p.publisher.Publish(topic, messages...)
	for _, span := range spans {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
	return err
}

func (p *tracingPublisher) Close() error {
	return p.publisher.Close()
}

func messageAttributes(op, topic string, msg *message.Message) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", op),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", msg.UUID),
		attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
	}
}
