// Package mailer publishes outbound mail events to RabbitMQ. A separate
// consumer renders templates and talks SMTP; the API only enqueues.
package mailer

import (
	"encoding/json"
	"fmt"
	"time"

	"artisan-market/pkg/utils"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	TypeVerifyEmail   = "verify_email"
	TypeResetPassword = "reset_password"
)

// Message is the payload placed on the mail queue
type Message struct {
	Type     string `json:"type"`
	To       string `json:"to"`
	FullName string `json:"fullName"`
	OTP      string `json:"otp,omitempty"`
	Token    string `json:"token,omitempty"`
}

// Publisher is the narrow interface the services depend on. Publish is
// fire-and-forget: callers log failures but never fail the request on them.
type Publisher interface {
	Publish(msg Message) error
	Close() error
}

type amqpPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     *zap.Logger
}

// NewPublisher connects to RabbitMQ and declares the durable mail queue
func NewPublisher(cfg utils.AMQPConfig, log *zap.Logger) (Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.MailQueue, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.MailQueue, err)
	}

	log.Info("Mail queue connected", zap.String("queue", cfg.MailQueue))

	return &amqpPublisher{
		conn:    conn,
		channel: ch,
		queue:   cfg.MailQueue,
		log:     log,
	}, nil
}

func (p *amqpPublisher) Publish(msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail message: %w", err)
	}

	err = p.channel.Publish(
		"",      // exchange: default
		p.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("publish mail message: %w", err)
	}

	p.log.Debug("Mail event published",
		zap.String("type", msg.Type),
		zap.String("to", msg.To),
	)
	return nil
}

func (p *amqpPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// nopPublisher logs instead of publishing. Used in development and when the
// broker is unreachable at startup.
type nopPublisher struct {
	log *zap.Logger
}

func NewNopPublisher(log *zap.Logger) Publisher {
	return &nopPublisher{log: log}
}

func (p *nopPublisher) Publish(msg Message) error {
	p.log.Info("Mail event (log only)",
		zap.String("type", msg.Type),
		zap.String("to", msg.To),
		zap.String("otp", msg.OTP),
	)
	return nil
}

func (p *nopPublisher) Close() error { return nil }
