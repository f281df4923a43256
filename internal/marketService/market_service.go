package market

import (
	"context"
	"fmt"
	"time"

	"nft-marketplace/internal/events"
	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/metadata"
	"nft-marketplace/internal/models"
	"nft-marketplace/internal/registry"
	"nft-marketplace/internal/treasury"
	"nft-marketplace/utils"
)

// MarketService defines the business logic over the marketplace registry:
// input validation, treasury access and event publication.
type MarketService struct {
	registry  registry.Registry
	treasury  *treasury.Treasury
	meta      metadata.URIStore
	publisher events.Publisher
}

// NewMarketService creates a new MarketService instance.
func NewMarketService(reg registry.Registry, tr *treasury.Treasury, meta metadata.URIStore, pub events.Publisher) *MarketService {
	return &MarketService{
		registry:  reg,
		treasury:  tr,
		meta:      meta,
		publisher: pub,
	}
}

// ListingFee returns the current protocol listing fee.
func (s *MarketService) ListingFee() int64 {
	return s.treasury.ListingFee()
}

// SetListingFee updates the protocol listing fee. Owner only.
func (s *MarketService) SetListingFee(caller string, fee int64) error {
	if caller == "" {
		return fmt.Errorf("service: %w - missing caller", marketerrors.ErrInvalidRequest)
	}
	if fee < 0 {
		return fmt.Errorf("service: %w - negative fee", marketerrors.ErrInvalidRequest)
	}
	if err := s.treasury.SetListingFee(caller, fee); err != nil {
		return fmt.Errorf("service: failed to set listing fee: %w", err)
	}
	return nil
}

// CreateItem validates and mints a new listing.
func (s *MarketService) CreateItem(caller, uri string, price int64, auction bool, endTime, paid int64) (models.Item, error) {
	if caller == "" || uri == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing caller or uri", marketerrors.ErrInvalidRequest)
	}

	item, err := s.registry.CreateItem(caller, uri, price, auction, endTime, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item for %s: %w", caller, err)
	}

	s.publish(models.EventItemCreated, item, caller, paid)
	return item, nil
}

// Buy validates and executes a direct sale.
func (s *MarketService) Buy(caller string, itemID, paid int64) (models.Item, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, err
	}

	item, err := s.registry.Buy(caller, itemID, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to buy item %d for %s: %w", itemID, caller, err)
	}

	s.publish(models.EventItemSold, item, caller, paid)
	return item, nil
}

// Resell validates and relists a held item for direct sale.
func (s *MarketService) Resell(caller string, itemID, newPrice, paid int64) (models.Item, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, err
	}

	item, err := s.registry.Resell(caller, itemID, newPrice, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to resell item %d for %s: %w", itemID, caller, err)
	}

	s.publish(models.EventItemRelisted, item, caller, paid)
	return item, nil
}

// Reauction validates and relists a held item as a fresh auction.
func (s *MarketService) Reauction(caller string, itemID, newPrice, endTime, paid int64) (models.Item, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, err
	}

	item, err := s.registry.Reauction(caller, itemID, newPrice, endTime, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to reauction item %d for %s: %w", itemID, caller, err)
	}

	s.publish(models.EventItemReauctioned, item, caller, paid)
	return item, nil
}

// Unlist validates and takes a listing off the market.
func (s *MarketService) Unlist(caller string, itemID, paid int64) (models.Item, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, err
	}

	item, err := s.registry.Unlist(caller, itemID, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to unlist item %d for %s: %w", itemID, caller, err)
	}

	s.publish(models.EventItemUnlisted, item, caller, paid)
	return item, nil
}

// PlaceBid validates and escrows an auction bid.
func (s *MarketService) PlaceBid(caller string, itemID, amount int64) (models.Item, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, err
	}
	if amount <= 0 {
		return models.Item{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidRequest)
	}

	item, err := s.registry.Bid(caller, itemID, amount)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to place bid on item %d for %s: %w", itemID, caller, err)
	}

	s.publish(models.EventBidPlaced, item, caller, amount)
	return item, nil
}

// WithdrawBid refunds the caller's escrowed bid and reports the amount.
func (s *MarketService) WithdrawBid(caller string, itemID int64) (models.Item, int64, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, 0, err
	}

	item, refunded, err := s.registry.WithdrawBid(caller, itemID)
	if err != nil {
		return models.Item{}, 0, fmt.Errorf("service: failed to withdraw bid on item %d for %s: %w", itemID, caller, err)
	}

	s.publish(models.EventBidWithdrawn, item, caller, refunded)
	return item, refunded, nil
}

// EndAuction settles an expired auction. Anyone may call it.
func (s *MarketService) EndAuction(caller string, itemID int64) (models.Item, error) {
	if err := validateCall(caller, itemID); err != nil {
		return models.Item{}, err
	}

	item, err := s.registry.EndAuction(caller, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to end auction on item %d: %w", itemID, err)
	}

	s.publish(models.EventAuctionEnded, item, caller, item.HighestBid)
	return item, nil
}

// GetItem returns one item together with its stored token URI.
func (s *MarketService) GetItem(itemID int64) (models.Item, string, error) {
	if itemID <= 0 {
		return models.Item{}, "", fmt.Errorf("service: %w - non-positive item id", marketerrors.ErrInvalidRequest)
	}

	item, err := s.registry.GetItem(itemID)
	if err != nil {
		return models.Item{}, "", fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	uri, err := s.meta.URI(itemID)
	if err != nil {
		return models.Item{}, "", fmt.Errorf("service: failed to get uri for item %d: %w", itemID, err)
	}
	return item, uri, nil
}

// MarketItems returns the items currently for direct sale.
func (s *MarketService) MarketItems() []models.Item {
	return s.registry.MarketItems()
}

// AuctionItems returns active auctions plus those awaiting withdrawals.
func (s *MarketService) AuctionItems() []models.Item {
	return s.registry.AuctionItems()
}

// ItemsListedBy returns an identity's open direct-sale listings.
func (s *MarketService) ItemsListedBy(identity string) ([]models.Item, error) {
	if identity == "" {
		return nil, fmt.Errorf("service: %w - empty identity", marketerrors.ErrInvalidRequest)
	}
	return s.registry.ItemsListedBy(identity), nil
}

// ItemsAuctionedBy returns an identity's auction listings.
func (s *MarketService) ItemsAuctionedBy(identity string) ([]models.Item, error) {
	if identity == "" {
		return nil, fmt.Errorf("service: %w - empty identity", marketerrors.ErrInvalidRequest)
	}
	return s.registry.ItemsAuctionedBy(identity), nil
}

// ItemsCreatedBy returns everything an identity ever minted.
func (s *MarketService) ItemsCreatedBy(identity string) ([]models.Item, error) {
	if identity == "" {
		return nil, fmt.Errorf("service: %w - empty identity", marketerrors.ErrInvalidRequest)
	}
	return s.registry.ItemsCreatedBy(identity), nil
}

// ItemsOwnedBy returns the items an identity currently holds.
func (s *MarketService) ItemsOwnedBy(identity string) ([]models.Item, error) {
	if identity == "" {
		return nil, fmt.Errorf("service: %w - empty identity", marketerrors.ErrInvalidRequest)
	}
	return s.registry.ItemsOwnedBy(identity), nil
}

// validateCall checks the shared caller/item-id preconditions.
func validateCall(caller string, itemID int64) error {
	if caller == "" {
		return fmt.Errorf("service: %w - missing caller", marketerrors.ErrInvalidRequest)
	}
	if itemID <= 0 {
		return fmt.Errorf("service: %w - non-positive item id", marketerrors.ErrInvalidRequest)
	}
	return nil
}

// publish sends an event to the configured bus, best effort. Operation
// results never depend on the publisher.
func (s *MarketService) publish(kind models.EventType, item models.Item, actor string, amount int64) {
	event := models.MarketEvent{
		EventID:   utils.GenerateID(),
		Type:      kind,
		Item:      item,
		Actor:     actor,
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		utils.Warn("failed to publish market event", map[string]any{
			"event_id": event.EventID,
			"type":     string(kind),
			"item_id":  item.ItemID,
			"error":    err.Error(),
		})
	}
}
