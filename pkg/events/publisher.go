package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fitness-booking/pkg/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	ExchangeName = "fitness"
	ExchangeKind = "topic"

	RoutingClassCreated   = "class.created"
	RoutingBookingCreated = "booking.created"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

type ClassCreated struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	StartTime      time.Time `json:"start_time"`
	Instructor     string    `json:"instructor"`
	AvailableSlots int       `json:"available_slots"`
}

type BookingCreated struct {
	ID             string    `json:"id"`
	FitnessClassID string    `json:"fitness_class_id"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	BookedAt       time.Time `json:"booked_at"`
	RemainingSlots int       `json:"remaining_slots"`
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                              { return nil }

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel amqpChannel
	log     *zap.Logger
}

func NewRabbitPublisher(url string, log *zap.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &RabbitPublisher{
		conn:    conn,
		channel: ch,
		log:     log.With(zap.String("component", "publisher")),
	}, nil
}

// Publish sends payload as JSON. amqp channels are not safe for concurrent
// publishing, so calls are serialized.
func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	p.mu.Unlock()

	if err != nil {
		metrics.RecordEvent(routingKey, "failed")
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	metrics.RecordEvent(routingKey, "ok")
	p.log.Debug("Event published",
		zap.String("exchange", ExchangeName),
		zap.String("routing_key", routingKey),
	)
	return nil
}

func (p *RabbitPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
