package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"nft-marketplace/internal/marketerrors"
	"nft-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, marketerrors.ErrNotBidder):
		return http.StatusNotFound, "no bid found for caller"
	case errors.Is(err, marketerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrInvalidPrice):
		return http.StatusBadRequest, "price must be at least 1 unit"
	case errors.Is(err, marketerrors.ErrFeeMismatch):
		return http.StatusBadRequest, "payment does not match the required amount"
	case errors.Is(err, marketerrors.ErrInsufficientFunds):
		return http.StatusBadRequest, "insufficient funds"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusForbidden, "only the treasury owner may do this"
	case errors.Is(err, marketerrors.ErrNotSeller):
		return http.StatusForbidden, "caller is not the seller"
	case errors.Is(err, marketerrors.ErrNotOwner):
		return http.StatusForbidden, "caller does not hold the item"
	case errors.Is(err, marketerrors.ErrSold):
		return http.StatusConflict, "item already sold"
	case errors.Is(err, marketerrors.ErrNotForSale):
		return http.StatusConflict, "item is not available this way"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, marketerrors.ErrAuctionNotYetEnded):
		return http.StatusConflict, "auction has not ended yet"
	case errors.Is(err, marketerrors.ErrAlreadyEnded):
		return http.StatusConflict, "auction was already settled"
	case errors.Is(err, marketerrors.ErrAlreadyWithdrawn):
		return http.StatusConflict, "bid was already withdrawn"
	case errors.Is(err, marketerrors.ErrLeadingBid):
		return http.StatusConflict, "highest bidder cannot withdraw yet"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
