package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"nft-marketplace/internal/models"
)

// NATSPublisher publishes marketplace events as JSON on per-item NATS
// subjects (market.events.{itemID}).
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to a NATS server.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to nats at %s: %w", url, err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, event models.MarketEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	subject := fmt.Sprintf("market.events.%d", event.Item.ItemID)
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish event %s to %s: %w", event.EventID, subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}
