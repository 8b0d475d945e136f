package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits invoice lifecycle events. Publication is best-effort: the
// caller logs a returned error and carries on with the request.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

const queueName = "invoice_events"

type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType: "application/json",
		Type:        routingKey,
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }
