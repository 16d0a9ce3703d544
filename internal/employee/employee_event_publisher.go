package employee

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"uns-visa/internal/events"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
	PublishVisaAlert(ctx context.Context, event events.VisaAlertEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}

func (noopEventPublisher) PublishVisaAlert(context.Context, events.VisaAlertEvent) error {
	return nil
}

func NewNoopEventPublisher() EventPublisher { return noopEventPublisher{} }

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishEmployeeCreated(
	ctx context.Context,
	event events.EmployeeCreatedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.EmployeeCreatedTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
	})
}

func (p *kafkaEventPublisher) PublishVisaAlert(
	ctx context.Context,
	event events.VisaAlertEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.VisaAlertTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
	})
}
