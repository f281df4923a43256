package helpers

import "nft-marketplace/internal/models"

// Request/Response DTOs
type CreateItemRequest struct {
	Caller  string `json:"caller" binding:"required"`
	URI     string `json:"uri" binding:"required"`
	Price   int64  `json:"price"`
	Auction bool   `json:"auction"`
	EndTime int64  `json:"end_time"`
	Paid    int64  `json:"paid"`
}

type BuyRequest struct {
	Caller string `json:"caller" binding:"required"`
	Paid   int64  `json:"paid"`
}

type ResellRequest struct {
	Caller string `json:"caller" binding:"required"`
	Price  int64  `json:"price"`
	Paid   int64  `json:"paid"`
}

type ReauctionRequest struct {
	Caller  string `json:"caller" binding:"required"`
	Price   int64  `json:"price"`
	EndTime int64  `json:"end_time"`
	Paid    int64  `json:"paid"`
}

type UnlistRequest struct {
	Caller string `json:"caller" binding:"required"`
	Paid   int64  `json:"paid"`
}

type PlaceBidRequest struct {
	Caller string `json:"caller" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type CallerRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type SetFeeRequest struct {
	Caller string `json:"caller" binding:"required"`
	Amount int64  `json:"amount"`
}

type ItemResponse struct {
	models.Item
	URI string `json:"uri,omitempty"`
}

type FeeResponse struct {
	ListingFee int64 `json:"listing_fee"`
}

type WithdrawResponse struct {
	models.Item
	Refunded int64 `json:"refunded"`
}
