package main

import (
	"fmt"
	"os"

	"nft-marketplace/internal/config"
	"nft-marketplace/internal/events"
	"nft-marketplace/internal/funds"
	market "nft-marketplace/internal/marketService"
	"nft-marketplace/internal/metadata"
	"nft-marketplace/internal/registry"
	"nft-marketplace/internal/server"
	"nft-marketplace/internal/treasury"
	"nft-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect event bus: %v\n", err)
		os.Exit(1)
	}
	defer publisher.Close()

	tr := treasury.New(cfg.TreasuryOwner, cfg.ListingFee)
	bank := funds.NewMemoryBank()
	prepopulateAccounts(bank)
	meta := metadata.NewMemoryStore()
	reg := registry.NewMemoryRegistry(cfg.EscrowAccount, tr, bank, meta)

	marketSvc := market.NewMarketService(reg, tr, meta, publisher)

	router := server.SetupRouter(marketSvc)

	utils.Info("starting marketplace server", map[string]any{
		"port":        cfg.Port,
		"listing_fee": cfg.ListingFee,
		"event_bus":   cfg.EventBus,
	})
	if err := router.Run(":" + cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAccounts funds sample accounts in the in-memory bank so the
// server is usable out of the box. A real deployment swaps the bank for a
// payment rail behind the same interface.
func prepopulateAccounts(bank *funds.MemoryBank) {
	for _, acct := range []string{"alice", "bob", "carol"} {
		bank.Deposit(acct, 1_000_000)
	}
}

// newPublisher builds the event publisher the config asks for.
func newPublisher(cfg config.Config) (events.Publisher, error) {
	switch cfg.EventBus {
	case "redis":
		return events.NewRedisPublisher(cfg.RedisAddr)
	case "nats":
		return events.NewNATSPublisher(cfg.NATSURL)
	default:
		return events.NopPublisher{}, nil
	}
}
