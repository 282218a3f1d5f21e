package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// AMQP publishes notifications to a durable exchange so other consumers
// (dashboards, bots) can react to balance events.
type AMQP struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// Message is the JSON body published for every notification.
type Message struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAMQP connects to the broker and declares the exchange and queue.
func NewAMQP(url, exchangeName, queueName string) (*AMQP, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	a := &AMQP{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}
	if err := a.setup(); err != nil {
		a.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return a, nil
}

func (a *AMQP) setup() error {
	err := a.channel.ExchangeDeclare(
		a.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = a.channel.QueueDeclare(
		a.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = a.channel.QueueBind(
		a.queueName,    // queue name
		a.queueName,    // routing key (same as queue name for direct exchange)
		a.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (a *AMQP) Notify(ctx context.Context, n Notification) error {
	body, err := json.Marshal(Message{
		Title:     n.Title,
		Body:      n.Body,
		Kind:      string(n.Kind),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("amqp: marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = a.channel.PublishWithContext(
		ctx,
		a.exchangeName, // exchange
		a.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp: publish notification: %w", err)
	}
	return nil
}

func (a *AMQP) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
