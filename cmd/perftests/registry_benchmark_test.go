package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"nft-marketplace/internal/funds"
	"nft-marketplace/internal/metadata"
	"nft-marketplace/internal/registry"
	"nft-marketplace/internal/treasury"
)

const (
	benchEscrow = "market-escrow"
	benchOwner  = "treasury-owner"
	benchFee    = int64(25)
)

func newBenchMarket() (*registry.MemoryRegistry, *funds.MemoryBank) {
	tr := treasury.New(benchOwner, benchFee)
	bank := funds.NewMemoryBank()
	reg := registry.NewMemoryRegistry(benchEscrow, tr, bank, metadata.NewMemoryStore())
	return reg, bank
}

func seedAuction(reg *registry.MemoryRegistry, bank *funds.MemoryBank, seller string, price int64) int64 {
	bank.Deposit(seller, benchFee)
	expiry := time.Now().Add(24 * time.Hour).Unix()
	item, err := reg.CreateItem(seller, "ipfs://bench", price, true, expiry, benchFee)
	if err != nil {
		panic(fmt.Sprintf("failed to seed auction: %v", err))
	}
	return item.ItemID
}

// Benchmark 1: CreateItem - Isolated Sellers (Low Contention - Micro Benchmark)
func Benchmark_CreateItem_Isolated(b *testing.B) {
	reg, bank := newBenchMarket()

	for i := 0; i < b.N; i++ {
		bank.Deposit(fmt.Sprintf("seller_%d", i), benchFee)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seller := fmt.Sprintf("seller_%d", i)
		uri := fmt.Sprintf("ipfs://bench_%d", i)
		if _, err := reg.CreateItem(seller, uri, 100, false, 0, benchFee); err != nil {
			b.Fatalf("failed to create item: %v", err)
		}
	}
}

// Benchmark 2: Bid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_Bid_ConcurrentSharedAuction(b *testing.B) {
	reg, bank := newBenchMarket()
	itemID := seedAuction(reg, bank, "seller", 100)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := fmt.Sprintf("bidder_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			bank.Deposit(bidder, nextBid)
			_, _ = reg.Bid(bidder, itemID, nextBid)
		}
	})
}

// Benchmark 3: GetItem - Single-Threaded (Low Contention)
func Benchmark_GetItem_SingleThreaded(b *testing.B) {
	reg, bank := newBenchMarket()

	itemIDs := make([]int64, b.N)
	for i := 0; i < b.N; i++ {
		seller := fmt.Sprintf("seller_%d", i)
		bank.Deposit(seller, benchFee)
		item, err := reg.CreateItem(seller, fmt.Sprintf("ipfs://bench_%d", i), 100, false, 0, benchFee)
		if err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
		itemIDs[i] = item.ItemID
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := reg.GetItem(itemIDs[i]); err != nil {
			b.Fatalf("failed to get item: %v", err)
		}
	}
}

// Benchmark 4: MarketItems - Concurrent View Reads (High Contention)
func Benchmark_MarketItems_Concurrent(b *testing.B) {
	reg, bank := newBenchMarket()

	for i := 0; i < 100; i++ {
		seller := fmt.Sprintf("seller_%d", i)
		bank.Deposit(seller, benchFee)
		if _, err := reg.CreateItem(seller, fmt.Sprintf("ipfs://bench_%d", i), 100, false, 0, benchFee); err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if items := reg.MarketItems(); len(items) != 100 {
				b.Errorf("unexpected market view size: %d", len(items))
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	reg, bank := newBenchMarket()
	itemID := seedAuction(reg, bank, "seller", 100)

	for j := 0; j < 50; j++ {
		bidder := fmt.Sprintf("bidder_seed_%d", j)
		amount := int64(100 + j*2)
		bank.Deposit(bidder, amount)
		_, _ = reg.Bid(bidder, itemID, amount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 300
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: place a new bid
				bidder := fmt.Sprintf("bidder_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				bank.Deposit(bidder, nextBid)
				_, _ = reg.Bid(bidder, itemID, nextBid)
			default:
				// Reader: inspect the item and the auction view
				if _, err := reg.GetItem(itemID); err != nil {
					b.Errorf("read error: %v", err)
				}
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
