package registry

import (
	"fmt"

	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/models"
)

// Bid escrows a further amount from the caller on an unsettled auction. The
// caller's cumulative committed amount must beat the current highest bid;
// raising one's own bid therefore only costs the difference.
func (r *MemoryRegistry) Bid(caller string, itemID, amount int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.lookup(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("bid on item %d: %w", itemID, err)
	}
	if !item.Auction {
		return models.Item{}, fmt.Errorf("bid on item %d: %w", itemID, marketerrors.ErrNotForSale)
	}
	if item.Ended {
		return models.Item{}, fmt.Errorf("bid on item %d: %w", itemID, marketerrors.ErrAuctionEnded)
	}

	committed := int64(0)
	entry := r.bids[itemID][caller]
	if entry != nil && !entry.Withdrawn {
		committed = entry.Amount
	}
	cumulative := committed + amount
	if cumulative <= item.HighestBid {
		return models.Item{}, fmt.Errorf("bid on item %d: cumulative %d, highest is %d: %w",
			itemID, cumulative, item.HighestBid, marketerrors.ErrBidTooLow)
	}

	if err := r.bank.Transfer(caller, r.escrow, amount); err != nil {
		return models.Item{}, fmt.Errorf("bid on item %d: escrow funds: %w", itemID, err)
	}

	if r.bids[itemID] == nil {
		r.bids[itemID] = make(map[string]*models.BidEntry)
	}
	if entry == nil || entry.Withdrawn {
		r.bids[itemID][caller] = &models.BidEntry{Amount: cumulative}
		item.PendingBidders++
	} else {
		entry.Amount = cumulative
	}
	item.HighestBid = cumulative
	item.HighestBidder = caller
	r.refreshViews(item)

	return *item, nil
}

// WithdrawBid refunds the caller's full escrowed amount on an item. Valid for
// any outbid or losing bidder at any point, including after settlement; the
// current leader stays locked in until the auction is settled.
func (r *MemoryRegistry) WithdrawBid(caller string, itemID int64) (models.Item, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.lookup(itemID)
	if err != nil {
		return models.Item{}, 0, fmt.Errorf("withdraw bid on item %d: %w", itemID, err)
	}
	entry := r.bids[itemID][caller]
	if entry == nil {
		return models.Item{}, 0, fmt.Errorf("withdraw bid on item %d: %w", itemID, marketerrors.ErrNotBidder)
	}
	if entry.Withdrawn {
		return models.Item{}, 0, fmt.Errorf("withdraw bid on item %d: %w", itemID, marketerrors.ErrAlreadyWithdrawn)
	}
	if !item.Ended && caller == item.HighestBidder {
		return models.Item{}, 0, fmt.Errorf("withdraw bid on item %d: %w", itemID, marketerrors.ErrLeadingBid)
	}

	amount := entry.Amount
	if err := r.bank.Transfer(r.escrow, caller, amount); err != nil {
		return models.Item{}, 0, fmt.Errorf("withdraw bid on item %d: refund: %w", itemID, err)
	}

	entry.Amount = 0
	entry.Withdrawn = true
	item.PendingBidders--
	r.refreshViews(item)

	return *item, amount, nil
}

// EndAuction settles an expired auction. Anyone may trigger it. With a winner
// the highest bid pays the seller, custody moves to the winner and the
// winner's ledger entry is consumed as the purchase price; with no bids,
// custody simply returns to the seller.
func (r *MemoryRegistry) EndAuction(caller string, itemID int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.lookup(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("end auction on item %d: %w", itemID, err)
	}
	if !item.Auction {
		return models.Item{}, fmt.Errorf("end auction on item %d: %w", itemID, marketerrors.ErrNotForSale)
	}
	if r.now().Unix() < item.EndTime {
		return models.Item{}, fmt.Errorf("end auction on item %d: %w", itemID, marketerrors.ErrAuctionNotYetEnded)
	}
	if item.Ended {
		return models.Item{}, fmt.Errorf("end auction on item %d: %w", itemID, marketerrors.ErrAlreadyEnded)
	}

	if item.HighestBidder == "" {
		item.Ended = true
		r.moveCustody(item, item.Seller)
		r.refreshViews(item)
		return *item, nil
	}

	if err := r.bank.Transfer(r.escrow, item.Seller, item.HighestBid); err != nil {
		return models.Item{}, fmt.Errorf("end auction on item %d: pay seller: %w", itemID, err)
	}

	item.Ended = true
	item.Sold = true
	r.moveCustody(item, item.HighestBidder)
	// The winner's escrow became the purchase price; they never withdraw.
	if entry := r.bids[itemID][item.HighestBidder]; entry != nil && !entry.Withdrawn {
		delete(r.bids[itemID], item.HighestBidder)
		item.PendingBidders--
	}
	r.refreshViews(item)

	return *item, nil
}

// refundPendingBids returns all unwithdrawn escrow on an item to its bidders,
// tombstoning each entry as it pays out. Callers must hold the lock.
func (r *MemoryRegistry) refundPendingBids(item *models.Item) error {
	for bidder, entry := range r.bids[item.ItemID] {
		if entry.Withdrawn {
			continue
		}
		if err := r.bank.Transfer(r.escrow, bidder, entry.Amount); err != nil {
			r.refreshViews(item)
			return fmt.Errorf("refund pending bid of %s: %w", bidder, err)
		}
		entry.Amount = 0
		entry.Withdrawn = true
		item.PendingBidders--
	}
	r.refreshViews(item)
	return nil
}
