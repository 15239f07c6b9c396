package notification

import (
	"context"
	"encoding/json"

	"github.com/Misenpai/prweb/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishDataRequested(ctx context.Context, event events.DataRequestedEvent) error
	PublishDataSubmitted(ctx context.Context, event events.DataSubmittedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishDataRequested(context.Context, events.DataRequestedEvent) error {
	return nil
}

func (noopEventPublisher) PublishDataSubmitted(context.Context, events.DataSubmittedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaEventPublisher(writer *kafkago.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishDataRequested(ctx context.Context, event events.DataRequestedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.DataRequestedTopic,
		Key:   []byte(event.Year + "-" + event.Month),
		Value: payload,
	})
}

func (p *kafkaEventPublisher) PublishDataSubmitted(ctx context.Context, event events.DataSubmittedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.DataSubmittedTopic,
		Key:   []byte(event.SubmittedBy),
		Value: payload,
	})
}
