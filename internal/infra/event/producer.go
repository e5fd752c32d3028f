package event

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{writer: writer, topic: cfg.BookingEventsTopic}
}

// PublishBookingEvent is keyed by booking reference so events for the same
// booking land on the same partition in order.
func (p *Producer) PublishBookingEvent(ctx context.Context, ev BookingEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(ev.BookingRef),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

// PublishUserEvent is keyed by the account email.
func (p *Producer) PublishUserEvent(ctx context.Context, ev UserEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal user event")
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(ev.UserEmail),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish user event")
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
