package funds

import (
	"fmt"
	"sync"

	"nft-marketplace/internal/marketerrors"
)

// Transferor is the currency collaborator contract: move an exact amount from
// one account to another. A transfer either fully succeeds or fails with no
// effect; the registry relies on that to keep its transitions all-or-nothing.
type Transferor interface {
	Transfer(from, to string, amount int64) error
	BalanceOf(account string) int64
}

// MemoryBank is a concurrency-safe in-memory Transferor used for local runs
// and tests. Accounts are created implicitly with a zero balance.
type MemoryBank struct {
	mu       sync.RWMutex
	balances map[string]int64
}

// NewMemoryBank creates an empty in-memory bank.
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{balances: make(map[string]int64)}
}

// Deposit credits an account. Intended for wiring and test setup.
func (b *MemoryBank) Deposit(account string, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] += amount
}

// Transfer moves amount from one account to another, failing without effect
// when the source balance is short.
func (b *MemoryBank) Transfer(from, to string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer of %d from %s: negative amount", amount, from)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[from] < amount {
		return fmt.Errorf("transfer of %d from %s: %w", amount, from, marketerrors.ErrInsufficientFunds)
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	return nil
}

// BalanceOf returns the current balance of an account.
func (b *MemoryBank) BalanceOf(account string) int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[account]
}
