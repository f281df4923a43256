package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBalances() map[string]int64 {
	return map[string]int64{
		"alice": 100_000,
		"bob":   100_000,
		"carol": 100_000,
		"dave":  100_000,
	}
}

// createItem drives POST /items and returns the assigned item id.
func createItem(t *testing.T, m *Market, caller, uri string, price int64, auction bool, endTime int64) int64 {
	t.Helper()

	resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, "/items", map[string]any{
		"caller":   caller,
		"uri":      uri,
		"price":    price,
		"auction":  auction,
		"end_time": endTime,
		"paid":     testFee,
	})
	require.Equal(t, http.StatusCreated, w.Code, "create item: %v", resp)
	return int64(Data(t, resp)["item_id"].(float64))
}

func TestMarketAPI_ListingAndViews(t *testing.T) {
	m := SetupMarket(defaultBalances())
	expiry := m.Clock.At.Add(time.Hour).Unix()

	createItem(t, m, "alice", "ipfs://item-1", 1000, false, 0)
	createItem(t, m, "alice", "ipfs://item-2", 2000, false, 0)
	createItem(t, m, "bob", "ipfs://item-3", 1500, true, expiry)
	createItem(t, m, "bob", "ipfs://item-4", 2500, true, expiry)

	resp, w := m.ExecuteRequestAndParse(t, http.MethodGet, "/market/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, List(t, resp), 2)

	resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/market/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, List(t, resp), 2)

	resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/users/alice/listed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, List(t, resp), 2)

	resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/users/bob/auctioned", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, List(t, resp), 2)

	resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/users/carol/created", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, List(t, resp))

	// Listing fees were escrowed on every create.
	assert.Equal(t, 4*testFee, m.Bank.BalanceOf(testEscrow))
}

func TestMarketAPI_BuyAndResell(t *testing.T) {
	m := SetupMarket(defaultBalances())
	itemID := createItem(t, m, "alice", "ipfs://art", 1000, false, 0)

	t.Run("buy with wrong payment is rejected", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/buy", itemID), map[string]any{
			"caller": "bob",
			"paid":   999,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", resp)
	})

	t.Run("buy transfers the price to the seller", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/buy", itemID), map[string]any{
			"caller": "bob",
			"paid":   1000,
		})
		require.Equal(t, http.StatusOK, w.Code, "%v", resp)

		data := Data(t, resp)
		assert.Equal(t, "bob", data["custodian"])
		assert.Equal(t, true, data["sold"])
		assert.Equal(t, int64(100_000-testFee+1000), m.Bank.BalanceOf("alice"))
		assert.Equal(t, int64(100_000-1000), m.Bank.BalanceOf("bob"))
	})

	t.Run("sold item leaves the market view", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodGet, "/market/items", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, List(t, resp))
	})

	t.Run("only the new owner can resell", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/resell", itemID), map[string]any{
			"caller": "carol",
			"price":  3000,
			"paid":   testFee,
		})
		assert.Equal(t, http.StatusForbidden, w.Code, "%v", resp)
	})

	t.Run("resell puts the item back on the market", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/resell", itemID), map[string]any{
			"caller": "bob",
			"price":  3000,
			"paid":   testFee,
		})
		require.Equal(t, http.StatusOK, w.Code, "%v", resp)

		data := Data(t, resp)
		assert.Equal(t, "bob", data["seller"])
		assert.Equal(t, testEscrow, data["custodian"])
		assert.Equal(t, float64(3000), data["price"])
		assert.Equal(t, false, data["sold"])

		resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/market/items", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, List(t, resp), 1)
	})
}

func TestMarketAPI_AuctionRoundTrip(t *testing.T) {
	m := SetupMarket(defaultBalances())
	expiry := m.Clock.At.Add(time.Hour).Unix()
	itemID := createItem(t, m, "alice", "ipfs://auctioned", 1000, true, expiry)

	t.Run("bids below the price are rejected", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/bids", itemID), map[string]any{
			"caller": "bob",
			"amount": 500,
		})
		assert.Equal(t, http.StatusConflict, w.Code, "%v", resp)
	})

	t.Run("competing bids raise the highest bid", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/bids", itemID), map[string]any{
			"caller": "bob",
			"amount": 2000,
		})
		require.Equal(t, http.StatusCreated, w.Code, "%v", resp)

		resp, w = m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/bids", itemID), map[string]any{
			"caller": "carol",
			"amount": 3000,
		})
		require.Equal(t, http.StatusCreated, w.Code, "%v", resp)

		data := Data(t, resp)
		assert.Equal(t, float64(3000), data["highest_bid"])
		assert.Equal(t, "carol", data["highest_bidder"])
	})

	t.Run("settlement before expiry is rejected", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/end", itemID), map[string]any{
			"caller": "alice",
		})
		assert.Equal(t, http.StatusConflict, w.Code, "%v", resp)
	})

	t.Run("settlement pays the seller and hands over custody", func(t *testing.T) {
		m.Clock.At = m.Clock.At.Add(2 * time.Hour)

		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/end", itemID), map[string]any{
			"caller": "alice",
		})
		require.Equal(t, http.StatusOK, w.Code, "%v", resp)

		data := Data(t, resp)
		assert.Equal(t, "carol", data["custodian"])
		assert.Equal(t, true, data["sold"])
		assert.Equal(t, true, data["ended"])
		assert.Equal(t, int64(100_000-testFee+3000), m.Bank.BalanceOf("alice"))
	})

	t.Run("winner owns the item", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodGet, "/users/carol/owned", nil)
		require.Equal(t, http.StatusOK, w.Code)
		items := List(t, resp)
		require.Len(t, items, 1)
		assert.Equal(t, float64(itemID), items[0].(map[string]any)["item_id"])
	})

	t.Run("item stays in the auction view until the loser withdraws", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodGet, "/market/auctions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, List(t, resp), 1)

		resp, w = m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/withdraw", itemID), map[string]any{
			"caller": "bob",
		})
		require.Equal(t, http.StatusOK, w.Code, "%v", resp)
		assert.Equal(t, float64(2000), Data(t, resp)["refunded"])
		assert.Equal(t, int64(100_000), m.Bank.BalanceOf("bob"))

		resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/market/auctions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, List(t, resp))
	})

	t.Run("double withdrawal is rejected", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/withdraw", itemID), map[string]any{
			"caller": "bob",
		})
		assert.Equal(t, http.StatusConflict, w.Code, "%v", resp)
	})
}

func TestMarketAPI_Unlist(t *testing.T) {
	m := SetupMarket(defaultBalances())
	itemID := createItem(t, m, "alice", "ipfs://shortlived", 1000, false, 0)

	t.Run("non-seller cannot unlist", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/unlist", itemID), map[string]any{
			"caller": "bob",
			"paid":   testFee,
		})
		assert.Equal(t, http.StatusForbidden, w.Code, "%v", resp)
	})

	t.Run("unlist with wrong fee is rejected", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/unlist", itemID), map[string]any{
			"caller": "alice",
			"paid":   testFee - 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", resp)
	})

	t.Run("unlist returns custody and forfeits the fee", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPost, fmt.Sprintf("/items/%d/unlist", itemID), map[string]any{
			"caller": "alice",
			"paid":   testFee,
		})
		require.Equal(t, http.StatusOK, w.Code, "%v", resp)
		assert.Equal(t, "alice", Data(t, resp)["custodian"])
		assert.Equal(t, testFee, m.Bank.BalanceOf(testOwner))

		resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/market/items", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, List(t, resp))

		resp, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/users/alice/listed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, List(t, resp))
	})
}

func TestMarketAPI_ListingFee(t *testing.T) {
	m := SetupMarket(defaultBalances())

	resp, w := m.ExecuteRequestAndParse(t, http.MethodGet, "/market/fee", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(testFee), Data(t, resp)["listing_fee"])

	t.Run("only the treasury owner may change the fee", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPut, "/market/fee", map[string]any{
			"caller": "alice",
			"amount": 50,
		})
		assert.Equal(t, http.StatusForbidden, w.Code, "%v", resp)
	})

	t.Run("updated fee applies to new listings", func(t *testing.T) {
		resp, w := m.ExecuteRequestAndParse(t, http.MethodPut, "/market/fee", map[string]any{
			"caller": testOwner,
			"amount": 50,
		})
		require.Equal(t, http.StatusOK, w.Code, "%v", resp)

		resp, w = m.ExecuteRequestAndParse(t, http.MethodPost, "/items", map[string]any{
			"caller": "alice",
			"uri":    "ipfs://pricier",
			"price":  int64(1000),
			"paid":   testFee,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "stale fee should be rejected: %v", resp)

		resp, w = m.ExecuteRequestAndParse(t, http.MethodPost, "/items", map[string]any{
			"caller": "alice",
			"uri":    "ipfs://pricier",
			"price":  int64(1000),
			"paid":   int64(50),
		})
		assert.Equal(t, http.StatusCreated, w.Code, "%v", resp)
	})
}

func TestMarketAPI_GetItem(t *testing.T) {
	m := SetupMarket(defaultBalances())
	itemID := createItem(t, m, "alice", "ipfs://metadata", 1000, false, 0)

	resp, w := m.ExecuteRequestAndParse(t, http.MethodGet, fmt.Sprintf("/items/%d", itemID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := Data(t, resp)
	assert.Equal(t, "ipfs://metadata", data["uri"])
	assert.Equal(t, "alice", data["creator"])

	_, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/items/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, w = m.ExecuteRequestAndParse(t, http.MethodGet, "/items/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
