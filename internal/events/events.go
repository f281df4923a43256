package events

import (
	"context"

	"nft-marketplace/internal/models"
)

// Publisher fans marketplace events out to observers. Publishing is best
// effort: the service logs failures but never fails an operation over them.
type Publisher interface {
	Publish(ctx context.Context, event models.MarketEvent) error
	Close() error
}

// NopPublisher discards every event. Used when no event bus is configured and
// in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.MarketEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
