package order

import (
	"context"
	"net/http"

	orderService "checkout-gateway/internal/service/order"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx          context.Context
	orderService orderService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, orderService orderService.IService) IHandler {
	return &Handler{
		ctx:          ctx,
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary      Create a Crossmint order
// @Description  Forwards the order-creation request to Crossmint with the server-held API key and relays the provider's response body and status verbatim
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request  body      orderService.CreateOrderRequest  true  "Order creation request"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  orderService.ProxyError
// @Failure      500      {object}  orderService.ProxyError
// @Router       /create-order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req orderService.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, orderService.ProxyError{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	// Passthrough route: the provider body is relayed as-is, without the
	// response envelope the rest of the API uses.
	result := h.orderService.CreateOrder(&req)
	c.JSON(result.Code, result.Data)
}
