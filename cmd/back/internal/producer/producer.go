package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Producer struct {
	channel Publisher
	now     func() time.Time
}

func NewProducer(channel Publisher) *Producer {
	return &Producer{channel: channel, now: time.Now}
}

// PublishJSON публикует сообщение в формате JSON
func (p *Producer) PublishJSON(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate message id: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",         // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    id.String(),
			Body:         body,
			DeliveryMode: amqp.Persistent, // Сохранять при перезапуске
			Timestamp:    p.now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", routingKey, err)
	}
	return nil
}

// Discard is used when no broker is configured.
type Discard struct{}

func (Discard) PublishJSON(context.Context, string, interface{}) error { return nil }
