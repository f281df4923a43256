package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"nft-marketplace/internal/models"
	"nft-marketplace/services/market/helpers"
	"nft-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	ListingFee() int64
	SetListingFee(caller string, fee int64) error
	CreateItem(caller, uri string, price int64, auction bool, endTime, paid int64) (models.Item, error)
	Buy(caller string, itemID, paid int64) (models.Item, error)
	Resell(caller string, itemID, newPrice, paid int64) (models.Item, error)
	Reauction(caller string, itemID, newPrice, endTime, paid int64) (models.Item, error)
	Unlist(caller string, itemID, paid int64) (models.Item, error)
	PlaceBid(caller string, itemID, amount int64) (models.Item, error)
	WithdrawBid(caller string, itemID int64) (models.Item, int64, error)
	EndAuction(caller string, itemID int64) (models.Item, error)
	GetItem(itemID int64) (models.Item, string, error)
	MarketItems() []models.Item
	AuctionItems() []models.Item
	ItemsListedBy(identity string) ([]models.Item, error)
	ItemsAuctionedBy(identity string) ([]models.Item, error)
	ItemsCreatedBy(identity string) ([]models.Item, error)
	ItemsOwnedBy(identity string) ([]models.Item, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// itemIDParam parses the :item_id path parameter, responding 400 on garbage.
func itemIDParam(c *gin.Context, handlerName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid item id: %w", err), "invalid item id")
		utils.Warn(handlerName+": invalid item id", map[string]any{"item_id": c.Param("item_id")})
		return 0, false
	}
	return id, true
}

// respondError maps a service error onto the response and logs it.
func respondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	fields["error"] = err.Error()
	utils.Warn(handlerName+": "+message, fields)
}

// GetListingFeeHandler handles GET /market/fee
func (h *MarketHandler) GetListingFeeHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.FeeResponse{ListingFee: h.service.ListingFee()}, "listing fee retrieved successfully")
}

// SetListingFeeHandler handles PUT /market/fee
func (h *MarketHandler) SetListingFeeHandler(c *gin.Context) {
	var req helpers.SetFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetListingFeeHandler", err)
		return
	}

	if err := h.service.SetListingFee(req.Caller, req.Amount); err != nil {
		respondError(c, "SetListingFeeHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FeeResponse{ListingFee: req.Amount}, "listing fee updated successfully")
	helpers.LogSuccess("SetListingFeeHandler", "listing fee updated successfully", map[string]any{
		"caller": req.Caller,
		"amount": req.Amount,
	})
}

// CreateItemHandler handles POST /items
func (h *MarketHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.CreateItem(req.Caller, req.URI, req.Price, req.Auction, req.EndTime, req.Paid)
	if err != nil {
		respondError(c, "CreateItemHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ItemResponse{Item: item, URI: req.URI}, "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": item.ItemID,
		"creator": item.Creator,
		"auction": item.Auction,
		"price":   item.Price,
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *MarketHandler) GetItemHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "GetItemHandler")
	if !ok {
		return
	}

	item, uri, err := h.service.GetItem(itemID)
	if err != nil {
		respondError(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{Item: item, URI: uri}, "item retrieved successfully")
}

// BuyHandler handles POST /items/:item_id/buy
func (h *MarketHandler) BuyHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "BuyHandler")
	if !ok {
		return
	}
	var req helpers.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyHandler", err)
		return
	}

	item, err := h.service.Buy(req.Caller, itemID, req.Paid)
	if err != nil {
		respondError(c, "BuyHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{Item: item}, "item purchased successfully")
	helpers.LogSuccess("BuyHandler", "item purchased successfully", map[string]any{
		"item_id": item.ItemID,
		"buyer":   req.Caller,
		"price":   req.Paid,
	})
}

// ResellHandler handles POST /items/:item_id/resell
func (h *MarketHandler) ResellHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "ResellHandler")
	if !ok {
		return
	}
	var req helpers.ResellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ResellHandler", err)
		return
	}

	item, err := h.service.Resell(req.Caller, itemID, req.Price, req.Paid)
	if err != nil {
		respondError(c, "ResellHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{Item: item}, "item relisted successfully")
	helpers.LogSuccess("ResellHandler", "item relisted successfully", map[string]any{
		"item_id": item.ItemID,
		"seller":  req.Caller,
		"price":   req.Price,
	})
}

// ReauctionHandler handles POST /items/:item_id/reauction
func (h *MarketHandler) ReauctionHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "ReauctionHandler")
	if !ok {
		return
	}
	var req helpers.ReauctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReauctionHandler", err)
		return
	}

	item, err := h.service.Reauction(req.Caller, itemID, req.Price, req.EndTime, req.Paid)
	if err != nil {
		respondError(c, "ReauctionHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{Item: item}, "item reauctioned successfully")
	helpers.LogSuccess("ReauctionHandler", "item reauctioned successfully", map[string]any{
		"item_id":  item.ItemID,
		"seller":   req.Caller,
		"price":    req.Price,
		"end_time": req.EndTime,
	})
}

// UnlistHandler handles POST /items/:item_id/unlist
func (h *MarketHandler) UnlistHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "UnlistHandler")
	if !ok {
		return
	}
	var req helpers.UnlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UnlistHandler", err)
		return
	}

	item, err := h.service.Unlist(req.Caller, itemID, req.Paid)
	if err != nil {
		respondError(c, "UnlistHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{Item: item}, "item unlisted successfully")
	helpers.LogSuccess("UnlistHandler", "item unlisted successfully", map[string]any{
		"item_id": item.ItemID,
		"seller":  req.Caller,
	})
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "PlaceBidHandler")
	if !ok {
		return
	}
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	item, err := h.service.PlaceBid(req.Caller, itemID, req.Amount)
	if err != nil {
		respondError(c, "PlaceBidHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ItemResponse{Item: item}, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"item_id":        item.ItemID,
		"bidder":         req.Caller,
		"amount":         req.Amount,
		"highest_bid":    item.HighestBid,
		"highest_bidder": item.HighestBidder,
	})
}

// WithdrawBidHandler handles POST /items/:item_id/withdraw
func (h *MarketHandler) WithdrawBidHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "WithdrawBidHandler")
	if !ok {
		return
	}
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawBidHandler", err)
		return
	}

	item, refunded, err := h.service.WithdrawBid(req.Caller, itemID)
	if err != nil {
		respondError(c, "WithdrawBidHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.WithdrawResponse{Item: item, Refunded: refunded}, "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{
		"item_id":  item.ItemID,
		"bidder":   req.Caller,
		"refunded": refunded,
	})
}

// EndAuctionHandler handles POST /items/:item_id/end
func (h *MarketHandler) EndAuctionHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c, "EndAuctionHandler")
	if !ok {
		return
	}
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EndAuctionHandler", err)
		return
	}

	item, err := h.service.EndAuction(req.Caller, itemID)
	if err != nil {
		respondError(c, "EndAuctionHandler", err, map[string]any{"item_id": itemID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{Item: item}, "auction settled successfully")
	helpers.LogSuccess("EndAuctionHandler", "auction settled successfully", map[string]any{
		"item_id":        item.ItemID,
		"highest_bid":    item.HighestBid,
		"highest_bidder": item.HighestBidder,
		"sold":           item.Sold,
	})
}

// MarketItemsHandler handles GET /market/items
func (h *MarketHandler) MarketItemsHandler(c *gin.Context) {
	items := h.service.MarketItems()
	utils.JSONResponse(c, http.StatusOK, items, "market items retrieved successfully")
}

// AuctionItemsHandler handles GET /market/auctions
func (h *MarketHandler) AuctionItemsHandler(c *gin.Context) {
	items := h.service.AuctionItems()
	utils.JSONResponse(c, http.StatusOK, items, "auction items retrieved successfully")
}

// ItemsListedByHandler handles GET /users/:user_id/listed
func (h *MarketHandler) ItemsListedByHandler(c *gin.Context) {
	h.userItems(c, "ItemsListedByHandler", h.service.ItemsListedBy)
}

// ItemsAuctionedByHandler handles GET /users/:user_id/auctioned
func (h *MarketHandler) ItemsAuctionedByHandler(c *gin.Context) {
	h.userItems(c, "ItemsAuctionedByHandler", h.service.ItemsAuctionedBy)
}

// ItemsCreatedByHandler handles GET /users/:user_id/created
func (h *MarketHandler) ItemsCreatedByHandler(c *gin.Context) {
	h.userItems(c, "ItemsCreatedByHandler", h.service.ItemsCreatedBy)
}

// ItemsOwnedByHandler handles GET /users/:user_id/owned
func (h *MarketHandler) ItemsOwnedByHandler(c *gin.Context) {
	h.userItems(c, "ItemsOwnedByHandler", h.service.ItemsOwnedBy)
}

// userItems serves the identity-keyed item views.
func (h *MarketHandler) userItems(c *gin.Context, handlerName string, query func(string) ([]models.Item, error)) {
	userID := c.Param("user_id")
	items, err := query(userID)
	if err != nil {
		respondError(c, handlerName, err, map[string]any{"user_id": userID})
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess(handlerName, "items retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(items),
	})
}
