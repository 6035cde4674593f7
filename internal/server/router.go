package server

import (
	"net/http"

	handler "autoplate/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(authSvc handler.AuthServiceInterface, plateSvc handler.PlateServiceInterface, biddingSvc handler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(CORSMiddleware())        // permissive CORS for browser clients
	router.Use(RequestLoggerMiddleware) // custom request logging with request ids

	authHandler := handler.NewAuthHandler(authSvc)
	plateHandler := handler.NewPlateHandler(plateSvc)
	bidHandler := handler.NewBidHandler(biddingSvc)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.POST("/register/", authHandler.RegisterHandler)
	router.POST("/login/", authHandler.LoginHandler)

	plates := router.Group("/plates")
	{
		plates.GET("/", plateHandler.ListPlatesHandler)
		plates.GET("/:id/", plateHandler.GetPlateHandler)

		admin := plates.Group("", handler.AuthRequired(authSvc), handler.AdminRequired())
		admin.POST("/", plateHandler.CreatePlateHandler)
		admin.PUT("/:id/", plateHandler.UpdatePlateHandler)
		admin.DELETE("/:id/", plateHandler.DeletePlateHandler)
	}

	bids := router.Group("/bids", handler.AuthRequired(authSvc))
	{
		bids.GET("/", bidHandler.ListMyBidsHandler)
		bids.POST("/", bidHandler.PlaceBidHandler)
		bids.GET("/:id/", bidHandler.GetBidHandler)
		bids.PUT("/:id/", bidHandler.UpdateBidHandler)
		bids.DELETE("/:id/", bidHandler.DeleteBidHandler)
	}

	return router
}
