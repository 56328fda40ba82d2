package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"floorplan-service/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends plan events to a topic exchange, routed by event kind.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	slogger  *slog.Logger
}

func DialAMQPPublisher(url, exchange string, slogger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p := newAMQPPublisher(ch, exchange, slogger)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch amqpChannel, exchange string, slogger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange, slogger: slogger}
}

var _ shared.EventPublisher = (*AMQPPublisher)(nil)

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.PlanEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.PlanID.String(),
		Timestamp:    event.OccurredAt,
		Type:         string(event.Kind),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, string(event.Kind), false, false, msg); err != nil {
		p.slogger.Warn("failed to publish plan event",
			"kind", event.Kind,
			"plan_id", event.PlanID,
			"error", err.Error())
		return err
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// LogPublisher records events in the application log when no broker is configured.
type LogPublisher struct {
	slogger *slog.Logger
}

func NewLogPublisher(slogger *slog.Logger) *LogPublisher {
	return &LogPublisher{slogger: slogger}
}

func (p *LogPublisher) Publish(ctx context.Context, event shared.PlanEvent) error {
	p.slogger.Debug("plan event",
		"kind", event.Kind,
		"plan_id", event.PlanID,
		"version", event.Version)
	return nil
}
