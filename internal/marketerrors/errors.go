package marketerrors

import "errors"

// Registry-level errors
var (
	ErrNotFound   = errors.New("item not found")
	ErrNotForSale = errors.New("item is not for direct sale")
	ErrSold       = errors.New("item already sold")
)

// Listing and payment errors
var (
	ErrInvalidPrice = errors.New("price must be at least 1 unit")
	ErrFeeMismatch  = errors.New("payment does not match the required amount")
	ErrUnauthorized = errors.New("caller is not the treasury owner")
	ErrNotSeller    = errors.New("caller is not the seller")
	ErrNotOwner     = errors.New("caller does not hold the item")
)

// Auction errors
var (
	ErrAuctionEnded       = errors.New("auction has ended")
	ErrBidTooLow          = errors.New("bid does not exceed the highest bid")
	ErrAuctionNotYetEnded = errors.New("auction has not reached its end time")
	ErrAlreadyEnded       = errors.New("auction was already settled")
	ErrNotBidder          = errors.New("caller has no bid on this item")
	ErrAlreadyWithdrawn   = errors.New("bid was already withdrawn")
	ErrLeadingBid         = errors.New("highest bidder cannot withdraw before settlement")
)

// Funds errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Service-level errors
var (
	ErrInvalidRequest = errors.New("invalid request")
)
