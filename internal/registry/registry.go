package registry

import (
	"fmt"
	"sync"
	"time"

	"nft-marketplace/internal/funds"
	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/internal/metadata"
	"nft-marketplace/internal/models"
	"nft-marketplace/internal/treasury"
)

// Registry defines the marketplace ledger: item lifecycle, auction state and
// the derived read views. Every mutating operation is all-or-nothing — either
// the state transition and its fund/custody transfer both commit, or neither
// does.
type Registry interface {
	CreateItem(caller, uri string, price int64, auction bool, endTime, paid int64) (models.Item, error)
	Buy(caller string, itemID, paid int64) (models.Item, error)
	Resell(caller string, itemID, newPrice, paid int64) (models.Item, error)
	Reauction(caller string, itemID, newPrice, endTime, paid int64) (models.Item, error)
	Unlist(caller string, itemID, paid int64) (models.Item, error)

	Bid(caller string, itemID, amount int64) (models.Item, error)
	WithdrawBid(caller string, itemID int64) (models.Item, int64, error)
	EndAuction(caller string, itemID int64) (models.Item, error)

	GetItem(itemID int64) (models.Item, error)
	MarketItems() []models.Item
	AuctionItems() []models.Item
	ItemsListedBy(identity string) []models.Item
	ItemsAuctionedBy(identity string) []models.Item
	ItemsCreatedBy(identity string) []models.Item
	ItemsOwnedBy(identity string) []models.Item
}

// MemoryRegistry is a concurrency-safe in-memory implementation of Registry.
// A single lock serializes mutating operations, so each one observes and
// commits a consistent item/ledger/index snapshot. Fund transfers run under
// the same lock, after validation and before any state mutation: the transfer
// is the only fallible step, so a failed operation leaves no trace.
type MemoryRegistry struct {
	mu       sync.RWMutex
	escrow   string // custody + bank account for items and bids in flight
	treasury *treasury.Treasury
	bank     funds.Transferor
	meta     metadata.URIStore
	now      func() time.Time

	nextID int64
	items  map[int64]*models.Item
	bids   map[int64]map[string]*models.BidEntry // key: itemID -> bidder -> entry

	// incremental indices, maintained on every mutation
	forSale     map[int64]struct{}            // !auction && !sold && custody in escrow
	auctionView map[int64]struct{}            // auction && (!ended || pending bidders)
	byCreator   map[string]map[int64]struct{} // creator -> itemIDs
	bySeller    map[string]map[int64]struct{} // seller -> itemIDs
	byCustodian map[string]map[int64]struct{} // custodian -> itemIDs
}

// NewMemoryRegistry creates an empty registry. The escrow identity names both
// the custody placeholder on listed items and the bank account holding funds
// in flight.
func NewMemoryRegistry(escrow string, tr *treasury.Treasury, bank funds.Transferor, meta metadata.URIStore) *MemoryRegistry {
	return &MemoryRegistry{
		escrow:      escrow,
		treasury:    tr,
		bank:        bank,
		meta:        meta,
		now:         time.Now,
		items:       make(map[int64]*models.Item),
		bids:        make(map[int64]map[string]*models.BidEntry),
		forSale:     make(map[int64]struct{}),
		auctionView: make(map[int64]struct{}),
		byCreator:   make(map[string]map[int64]struct{}),
		bySeller:    make(map[string]map[int64]struct{}),
		byCustodian: make(map[string]map[int64]struct{}),
	}
}

// Escrow returns the escrow identity the registry was created with.
func (r *MemoryRegistry) Escrow() string {
	return r.escrow
}

// SetClock overrides the registry clock. This method is intended for tests only.
func (r *MemoryRegistry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// CreateItem mints a new item, collects the listing fee and places the token
// in escrow custody, listed either for direct sale or as an auction.
func (r *MemoryRegistry) CreateItem(caller, uri string, price int64, auction bool, endTime, paid int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if price < 1 {
		return models.Item{}, fmt.Errorf("create item: %w", marketerrors.ErrInvalidPrice)
	}
	fee := r.treasury.ListingFee()
	if paid != fee {
		return models.Item{}, fmt.Errorf("create item: paid %d, listing fee is %d: %w", paid, fee, marketerrors.ErrFeeMismatch)
	}

	if err := r.bank.Transfer(caller, r.escrow, paid); err != nil {
		return models.Item{}, fmt.Errorf("create item: collect listing fee: %w", err)
	}
	r.treasury.Collect(paid)

	r.nextID++
	item := &models.Item{
		ItemID:        r.nextID,
		Creator:       caller,
		Seller:        caller,
		Custodian:     r.escrow,
		Price:         price,
		Auction:       auction,
		EndTime:       endTime,
		HighestBid:    price,
		HighestBidder: "",
	}
	r.items[item.ItemID] = item
	r.meta.SetURI(item.ItemID, uri)

	r.indexAdd(r.byCreator, caller, item.ItemID)
	r.indexAdd(r.bySeller, caller, item.ItemID)
	r.indexAdd(r.byCustodian, r.escrow, item.ItemID)
	r.refreshViews(item)

	return *item, nil
}

// Buy completes a direct sale: the exact asking price moves from the buyer to
// the seller and custody leaves escrow.
func (r *MemoryRegistry) Buy(caller string, itemID, paid int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.lookup(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("buy item %d: %w", itemID, err)
	}
	if item.Sold {
		return models.Item{}, fmt.Errorf("buy item %d: %w", itemID, marketerrors.ErrSold)
	}
	if item.Auction {
		return models.Item{}, fmt.Errorf("buy item %d: %w", itemID, marketerrors.ErrNotForSale)
	}
	if paid != item.Price {
		return models.Item{}, fmt.Errorf("buy item %d: paid %d, price is %d: %w", itemID, paid, item.Price, marketerrors.ErrFeeMismatch)
	}

	if err := r.bank.Transfer(caller, item.Seller, paid); err != nil {
		return models.Item{}, fmt.Errorf("buy item %d: pay seller: %w", itemID, err)
	}

	item.Sold = true
	r.moveCustody(item, caller)
	r.refreshViews(item)

	return *item, nil
}

// Resell puts a previously bought or won item back on direct sale. The caller
// must currently hold the token; custody moves back to escrow.
func (r *MemoryRegistry) Resell(caller string, itemID, newPrice, paid int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.relistChecks(caller, itemID, newPrice, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("resell item %d: %w", itemID, err)
	}

	if err := r.bank.Transfer(caller, r.escrow, paid); err != nil {
		return models.Item{}, fmt.Errorf("resell item %d: collect listing fee: %w", itemID, err)
	}
	r.treasury.Collect(paid)

	r.moveSeller(item, caller)
	r.moveCustody(item, r.escrow)
	item.Price = newPrice
	item.Sold = false
	item.Auction = false
	r.refreshViews(item)

	return *item, nil
}

// Reauction puts a held item back up as a fresh auction cycle. Unwithdrawn
// escrow from the previous cycle is refunded to its bidders before the reset,
// so the new cycle cannot strand funds.
func (r *MemoryRegistry) Reauction(caller string, itemID, newPrice, endTime, paid int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.relistChecks(caller, itemID, newPrice, paid)
	if err != nil {
		return models.Item{}, fmt.Errorf("reauction item %d: %w", itemID, err)
	}

	// The fee transfer is the only step that can fail: collect it first, so a
	// fee-short caller leaves the previous cycle's ledger untouched. Refunds
	// then draw on escrow, which holds every pending bid by construction.
	if err := r.bank.Transfer(caller, r.escrow, paid); err != nil {
		return models.Item{}, fmt.Errorf("reauction item %d: collect listing fee: %w", itemID, err)
	}
	r.treasury.Collect(paid)
	if err := r.refundPendingBids(item); err != nil {
		return models.Item{}, fmt.Errorf("reauction item %d: %w", itemID, err)
	}
	delete(r.bids, itemID)

	r.moveSeller(item, caller)
	r.moveCustody(item, r.escrow)
	item.Price = newPrice
	item.Sold = false
	item.Auction = true
	item.EndTime = endTime
	item.Ended = false
	item.HighestBid = newPrice
	item.HighestBidder = ""
	item.PendingBidders = 0
	r.refreshViews(item)

	return *item, nil
}

// Unlist takes an item off direct sale and returns custody to the seller. The
// listing fee is charged again and forfeited to the treasury owner, not
// refunded — observed marketplace behavior, preserved as-is.
func (r *MemoryRegistry) Unlist(caller string, itemID, paid int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.lookup(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("unlist item %d: %w", itemID, err)
	}
	if caller != item.Seller {
		return models.Item{}, fmt.Errorf("unlist item %d: %w", itemID, marketerrors.ErrNotSeller)
	}
	if item.Auction {
		return models.Item{}, fmt.Errorf("unlist item %d: %w", itemID, marketerrors.ErrNotForSale)
	}
	if item.Sold {
		return models.Item{}, fmt.Errorf("unlist item %d: %w", itemID, marketerrors.ErrSold)
	}
	if item.Custodian != r.escrow {
		return models.Item{}, fmt.Errorf("unlist item %d: not in escrow custody: %w", itemID, marketerrors.ErrNotForSale)
	}
	fee := r.treasury.ListingFee()
	if paid != fee {
		return models.Item{}, fmt.Errorf("unlist item %d: paid %d, listing fee is %d: %w", itemID, paid, fee, marketerrors.ErrFeeMismatch)
	}

	if err := r.bank.Transfer(caller, r.treasury.Owner(), paid); err != nil {
		return models.Item{}, fmt.Errorf("unlist item %d: forfeit listing fee: %w", itemID, err)
	}

	r.moveCustody(item, item.Seller)
	r.refreshViews(item)

	return *item, nil
}

// GetItem returns a copy of one item record.
func (r *MemoryRegistry) GetItem(itemID int64) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, err := r.lookup(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", itemID, err)
	}
	return *item, nil
}

// lookup returns the live item record. Callers must hold the lock.
func (r *MemoryRegistry) lookup(itemID int64) (*models.Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, marketerrors.ErrNotFound
	}
	return item, nil
}

// relistChecks validates the shared resell/reauction preconditions and
// returns the live record. Callers must hold the lock.
func (r *MemoryRegistry) relistChecks(caller string, itemID, newPrice, paid int64) (*models.Item, error) {
	item, err := r.lookup(itemID)
	if err != nil {
		return nil, err
	}
	if caller != item.Custodian {
		return nil, marketerrors.ErrNotOwner
	}
	fee := r.treasury.ListingFee()
	if paid != fee {
		return nil, fmt.Errorf("paid %d, listing fee is %d: %w", paid, fee, marketerrors.ErrFeeMismatch)
	}
	if newPrice < 1 {
		return nil, marketerrors.ErrInvalidPrice
	}
	return item, nil
}
