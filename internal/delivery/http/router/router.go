// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bakehouse/internal/delivery/http/middleware"
	"bakehouse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoreHandler       *handler.StoreHandler
	DeliveryFeeHandler *handler.DeliveryFeeHandler
	LocatorHandler     *handler.LocatorHandler
	QuoteHandler       *handler.QuoteHandler
	PinMiddleware      *middleware.PinMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	storeHandler       *handler.StoreHandler
	deliveryFeeHandler *handler.DeliveryFeeHandler
	locatorHandler     *handler.LocatorHandler
	quoteHandler       *handler.QuoteHandler
	pinMiddleware      *middleware.PinMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storeHandler:       params.StoreHandler,
		deliveryFeeHandler: params.DeliveryFeeHandler,
		locatorHandler:     params.LocatorHandler,
		quoteHandler:       params.QuoteHandler,
		pinMiddleware:      params.PinMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Store routes. Reads are public, mutations require the admin PIN.
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.GET("/nearest", r.locatorHandler.FindNearest)
		storeGroup.POST("", r.storeHandler.CreateStore, r.pinMiddleware.RequirePin)
		storeGroup.PUT("/:id", r.storeHandler.UpdateStore, r.pinMiddleware.RequirePin)
		storeGroup.DELETE("/:id", r.storeHandler.DeleteStore, r.pinMiddleware.RequirePin)
	}

	// Delivery fee routes, gated the same way.
	feeGroup := e.Group("/delivery-fees")
	{
		feeGroup.GET("", r.deliveryFeeHandler.ListFees)
		feeGroup.POST("", r.deliveryFeeHandler.CreateFee, r.pinMiddleware.RequirePin)
		feeGroup.PUT("/:id", r.deliveryFeeHandler.UpdateFee, r.pinMiddleware.RequirePin)
		feeGroup.DELETE("/:id", r.deliveryFeeHandler.DeleteFee, r.pinMiddleware.RequirePin)
	}

	// Quote routes
	quoteGroup := e.Group("/quotes")
	{
		quoteGroup.POST("/cake", r.quoteHandler.QuoteCake)
	}
}
