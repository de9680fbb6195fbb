package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/socialclub/internal/pkg/logger"
)

// MessageHandler processes the payload of one message
type MessageHandler func(ctx context.Context, data []byte) error

// Consumer delivers messages of one subject to a handler, load-balanced across a queue group
type Consumer struct {
	subject string
	sub     *nats.Subscription
	timeout time.Duration
}

// NewConsumer subscribes handler to subject. Handler errors are logged, the message is not redelivered.
func NewConsumer(client *Client, subject, queueGroup string, timeout time.Duration, handler MessageHandler) (*Consumer, error) {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	c := &Consumer{subject: subject, timeout: timeout}

	sub, err := client.QueueSubscribe(subject, queueGroup, func(msg *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := handler(ctx, msg.Data); err != nil {
			logger.Error("Failed to handle message",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	c.sub = sub
	logger.Info("Consumer started",
		logger.String("subject", subject),
		logger.String("queue_group", queueGroup))
	return c, nil
}

// Subject returns the subscribed subject
func (c *Consumer) Subject() string {
	return c.subject
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Unsubscribe()
}
