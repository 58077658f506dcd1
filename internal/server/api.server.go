package serverApp

import (
	"context"
	"sync"

	"checkout-gateway/internal/pkg/crossmint"
	"checkout-gateway/internal/pkg/middleware"

	checkoutHandler "checkout-gateway/internal/handler/checkout"
	orderHandler "checkout-gateway/internal/handler/order"
	checkoutService "checkout-gateway/internal/service/checkout"
	orderService "checkout-gateway/internal/service/order"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Setup initializes the HTTP server with middleware and routes
func Setup(
	engine *gin.Engine,
	ctx context.Context,
	wg *sync.WaitGroup,
	cm *crossmint.Client,
) {
	InitMiddleware(engine)

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": 200,
			"service": gin.H{
				"crossmint": gin.H{
					"status": lo.Ternary(cm.HasServerKey(), "configured", "missing_key"),
				},
			},
		})
	})

	e := engine.Group(BasePath())
	InitRoutes(e, ctx, wg, cm)
}

// BasePath returns the base API path
func BasePath() string {
	return "/api"
}

// InitMiddleware initializes global middleware
func InitMiddleware(e *gin.Engine) {
	e.Use(middleware.CorsMiddleware())
	e.Use(middleware.RequestInit())
	e.Use(middleware.ResponseInit())
}

func InitRoutes(
	e *gin.RouterGroup,
	ctx context.Context,
	wg *sync.WaitGroup,
	cm *crossmint.Client,
) {
	// === Order proxy ===
	OrderService := orderService.NewService(ctx, cm)
	OrderHandler := orderHandler.NewHandler(ctx, OrderService)
	OrderHandler.NewRoutes(e)

	// === Checkout sessions ===
	CheckoutService := checkoutService.NewService(ctx, OrderService)
	CheckoutHandler := checkoutHandler.NewHandler(ctx, CheckoutService)
	CheckoutHandler.NewRoutes(e)
}
