package models

import "time"

// Item represents a marketplace item, one record per minted token. Records
// are created on listing and mutated over the item's whole life, never
// deleted.
type Item struct {
	ItemID         int64  `json:"item_id"`
	Creator        string `json:"creator"`
	Seller         string `json:"seller"`
	Custodian      string `json:"custodian"`
	Price          int64  `json:"price"`
	Sold           bool   `json:"sold"`
	Auction        bool   `json:"auction"`
	EndTime        int64  `json:"end_time"` // unix seconds, meaningless unless Auction
	Ended          bool   `json:"ended"`
	HighestBid     int64  `json:"highest_bid"`
	HighestBidder  string `json:"highest_bidder"`
	PendingBidders int    `json:"pending_bidders"`
}

// BidEntry is a bidder's accumulated escrowed amount on one auction cycle.
// Entries are tombstoned (Withdrawn=true) instead of deleted so a repeat
// withdrawal can be told apart from a caller who never bid.
type BidEntry struct {
	Amount    int64 `json:"amount"`
	Withdrawn bool  `json:"withdrawn"`
}

// EventType identifies a marketplace event for observers.
type EventType string

const (
	EventItemCreated     EventType = "item_created"
	EventItemSold        EventType = "item_sold"
	EventItemRelisted    EventType = "item_relisted"
	EventItemReauctioned EventType = "item_reauctioned"
	EventItemUnlisted    EventType = "item_unlisted"
	EventBidPlaced       EventType = "bid_placed"
	EventBidWithdrawn    EventType = "bid_withdrawn"
	EventAuctionEnded    EventType = "auction_ended"
)

// MarketEvent is published after every successful mutating operation. Item
// carries the full post-operation state.
type MarketEvent struct {
	EventID   string    `json:"event_id"`
	Type      EventType `json:"type"`
	Item      Item      `json:"item"`
	Actor     string    `json:"actor"`
	Amount    int64     `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
