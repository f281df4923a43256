package server

import (
	handler "nft-marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(service)

	market := router.Group("/market")
	{
		market.GET("/fee", marketHandler.GetListingFeeHandler)
		market.PUT("/fee", marketHandler.SetListingFeeHandler)
		market.GET("/items", marketHandler.MarketItemsHandler)
		market.GET("/auctions", marketHandler.AuctionItemsHandler)
	}

	items := router.Group("/items")
	{
		items.POST("", marketHandler.CreateItemHandler)
		items.GET("/:item_id", marketHandler.GetItemHandler)
		items.POST("/:item_id/buy", marketHandler.BuyHandler)
		items.POST("/:item_id/resell", marketHandler.ResellHandler)
		items.POST("/:item_id/reauction", marketHandler.ReauctionHandler)
		items.POST("/:item_id/unlist", marketHandler.UnlistHandler)
		items.POST("/:item_id/bids", marketHandler.PlaceBidHandler)
		items.POST("/:item_id/withdraw", marketHandler.WithdrawBidHandler)
		items.POST("/:item_id/end", marketHandler.EndAuctionHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/listed", marketHandler.ItemsListedByHandler)
		users.GET("/:user_id/auctioned", marketHandler.ItemsAuctionedByHandler)
		users.GET("/:user_id/created", marketHandler.ItemsCreatedByHandler)
		users.GET("/:user_id/owned", marketHandler.ItemsOwnedByHandler)
	}

	return router
}
