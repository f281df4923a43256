package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"nft-marketplace/internal/events"
	"nft-marketplace/internal/funds"
	market "nft-marketplace/internal/marketService"
	"nft-marketplace/internal/metadata"
	"nft-marketplace/internal/registry"
	"nft-marketplace/internal/server"
	"nft-marketplace/internal/treasury"

	"github.com/gin-gonic/gin"
)

const (
	testEscrow = "market-escrow"
	testOwner  = "treasury-owner"
	testFee    = int64(25)
)

// TestClock pins the marketplace clock to a movable instant.
type TestClock struct{ At time.Time }

func (c *TestClock) Now() time.Time { return c.At }

// Market bundles the wired-up components an integration test drives.
type Market struct {
	Router *gin.Engine
	Reg    *registry.MemoryRegistry
	Bank   *funds.MemoryBank
	Clock  *TestClock
}

// SetupMarket wires a full stack over in-memory collaborators, with the given
// accounts funded.
func SetupMarket(balances map[string]int64) *Market {
	gin.SetMode(gin.TestMode)

	tr := treasury.New(testOwner, testFee)
	bank := funds.NewMemoryBank()
	for acct, amount := range balances {
		bank.Deposit(acct, amount)
	}
	clock := &TestClock{At: time.Unix(1_700_000_000, 0)}
	meta := metadata.NewMemoryStore()

	reg := registry.NewMemoryRegistry(testEscrow, tr, bank, meta)
	reg.SetClock(clock.Now)

	service := market.NewMarketService(reg, tr, meta, events.NopPublisher{})
	router := server.SetupRouter(service)
	return &Market{Router: router, Reg: reg, Bank: bank, Clock: clock}
}

// ExecuteRequestAndParse executes an HTTP request on the market router and
// parses the response envelope.
func (m *Market) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	m.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the data payload of a response envelope as an object.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no object data: %v", resp)
	}
	return data
}

// List extracts the data payload of a response envelope as a list.
func List(t *testing.T, resp map[string]any) []any {
	t.Helper()

	if resp["data"] == nil {
		return nil
	}
	list, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no list data: %v", resp)
	}
	return list
}
