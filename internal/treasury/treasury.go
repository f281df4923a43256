package treasury

import (
	"fmt"
	"sync"

	"nft-marketplace/internal/marketerrors"
)

// Treasury holds the protocol listing fee and the accumulated fee balance.
// Only the owner identity fixed at creation may change the fee.
//
// Note: the unlisting charge is forfeited to the owner rather than refunded;
// that matches the observed marketplace behavior and is preserved on purpose.
type Treasury struct {
	mu         sync.RWMutex
	owner      string
	listingFee int64
	collected  int64
}

// New creates a treasury with the given owner identity and initial fee.
func New(owner string, listingFee int64) *Treasury {
	return &Treasury{owner: owner, listingFee: listingFee}
}

// Owner returns the identity allowed to change the listing fee. The unlist
// charge is also paid out to this identity.
func (t *Treasury) Owner() string {
	return t.owner
}

// ListingFee returns the current protocol listing fee.
func (t *Treasury) ListingFee() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.listingFee
}

// SetListingFee replaces the listing fee. Only the owner may call it.
func (t *Treasury) SetListingFee(caller string, fee int64) error {
	if caller != t.owner {
		return fmt.Errorf("set listing fee by %s: %w", caller, marketerrors.ErrUnauthorized)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listingFee = fee
	return nil
}

// Collect adds a paid listing fee to the accumulated balance.
func (t *Treasury) Collect(amount int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.collected += amount
}

// Collected returns the total of listing fees collected so far.
func (t *Treasury) Collected() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.collected
}
