package nats

import (
	"encoding/json"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/logger"
)

// Producer publishes JSON encoded events
type Producer struct {
	client *Client
}

// NewProducer creates a new NATS producer on top of client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals message and sends it to subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return err
	}

	logger.Debug("Published message", logger.String("subject", subject))
	return nil
}
