package registry

import (
	"sort"

	"nft-marketplace/internal/models"
)

// The read views are kept as incremental index sets rather than recomputed by
// scanning the item arena. refreshViews re-evaluates one item's membership in
// the predicate sets; the identity-keyed sets are maintained by moveSeller and
// moveCustody at the point of mutation.

// MarketItems returns items currently for direct sale, custody in escrow.
func (r *MemoryRegistry) MarketItems() []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.forSale, nil)
}

// AuctionItems returns active auctions plus settled auctions still awaiting
// loser withdrawals.
func (r *MemoryRegistry) AuctionItems() []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.auctionView, nil)
}

// ItemsListedBy returns the identity's open direct-sale listings.
func (r *MemoryRegistry) ItemsListedBy(identity string) []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.bySeller[identity], func(it *models.Item) bool {
		return !it.Auction && !it.Sold && it.Custodian == r.escrow
	})
}

// ItemsAuctionedBy returns the identity's auction listings in any state.
func (r *MemoryRegistry) ItemsAuctionedBy(identity string) []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.bySeller[identity], func(it *models.Item) bool {
		return it.Auction
	})
}

// ItemsCreatedBy returns every item the identity ever minted, in any state.
func (r *MemoryRegistry) ItemsCreatedBy(identity string) []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.byCreator[identity], nil)
}

// ItemsOwnedBy returns the items the identity currently holds.
func (r *MemoryRegistry) ItemsOwnedBy(identity string) []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(r.byCustodian[identity], nil)
}

// collect copies the items of an index set, optionally filtered, sorted by id.
// Callers must hold at least the read lock.
func (r *MemoryRegistry) collect(set map[int64]struct{}, keep func(*models.Item) bool) []models.Item {
	out := make([]models.Item, 0, len(set))
	for id := range set {
		item := r.items[id]
		if keep != nil && !keep(item) {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// refreshViews updates the predicate sets for one item. Callers must hold the
// lock.
func (r *MemoryRegistry) refreshViews(item *models.Item) {
	if !item.Auction && !item.Sold && item.Custodian == r.escrow {
		r.forSale[item.ItemID] = struct{}{}
	} else {
		delete(r.forSale, item.ItemID)
	}

	if item.Auction && (!item.Ended || item.PendingBidders > 0) {
		r.auctionView[item.ItemID] = struct{}{}
	} else {
		delete(r.auctionView, item.ItemID)
	}
}

// moveSeller reassigns an item's seller and the seller index. Callers must
// hold the lock.
func (r *MemoryRegistry) moveSeller(item *models.Item, seller string) {
	if item.Seller == seller {
		return
	}
	r.indexRemove(r.bySeller, item.Seller, item.ItemID)
	item.Seller = seller
	r.indexAdd(r.bySeller, seller, item.ItemID)
}

// moveCustody reassigns an item's custodian and the custodian index. Callers
// must hold the lock.
func (r *MemoryRegistry) moveCustody(item *models.Item, custodian string) {
	if item.Custodian == custodian {
		return
	}
	r.indexRemove(r.byCustodian, item.Custodian, item.ItemID)
	item.Custodian = custodian
	r.indexAdd(r.byCustodian, custodian, item.ItemID)
}

func (r *MemoryRegistry) indexAdd(idx map[string]map[int64]struct{}, key string, id int64) {
	set, ok := idx[key]
	if !ok {
		set = make(map[int64]struct{})
		idx[key] = set
	}
	set[id] = struct{}{}
}

func (r *MemoryRegistry) indexRemove(idx map[string]map[int64]struct{}, key string, id int64) {
	if set, ok := idx[key]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(idx, key)
		}
	}
}
