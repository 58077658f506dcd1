package checkout

import (
	types "checkout-gateway/internal/common/type"
	"checkout-gateway/internal/pkg/helper"
	checkoutService "checkout-gateway/internal/service/checkout"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx             context.Context
	checkoutService checkoutService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, checkoutService checkoutService.IService) IHandler {
	return &Handler{
		ctx:             ctx,
		checkoutService: checkoutService,
	}
}

// CreateSession godoc
// @Summary      Open a checkout session
// @Description  Creates a session for the given amount/recipient and triggers order creation once the amount passes validation
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request  body      checkoutService.CreateSessionRequest  true  "Checkout session request"
// @Success      201      {object}  types.ResponseAPI{data=checkoutService.SessionView}
// @Failure      400      {object}  types.ResponseAPI
// @Router       /v1/checkout/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	var req checkoutService.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.checkoutService.CreateSession(&req))
}

// GetSession godoc
// @Summary      Read a checkout session
// @Tags         Checkout
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  types.ResponseAPI{data=checkoutService.SessionView}
// @Failure      404         {object}  types.ResponseAPI
// @Router       /v1/checkout/sessions/{session_id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	send(h.checkoutService.GetSession(c.Param("session_id")))
}

// UpdateAmount godoc
// @Summary      Change the session amount
// @Description  Updates the input amount; a changed amount clears a previous creation error and re-arms the creation guard
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                               true  "Session ID"
// @Param        request     body      checkoutService.UpdateAmountRequest  true  "New amount"
// @Success      200         {object}  types.ResponseAPI{data=checkoutService.SessionView}
// @Failure      404         {object}  types.ResponseAPI
// @Router       /v1/checkout/sessions/{session_id}/amount [put]
func (h *Handler) UpdateAmount(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	var req checkoutService.UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.checkoutService.UpdateAmount(c.Param("session_id"), &req))
}

// OrderEvent godoc
// @Summary      Report a provider order update
// @Description  Ingests the order object the embedded payment surface reported; phase transitions into delivery/completed advance the session
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                              true  "Session ID"
// @Param        request     body      checkoutService.OrderEventRequest   true  "Provider order object"
// @Success      200         {object}  types.ResponseAPI{data=checkoutService.SessionView}
// @Failure      400         {object}  types.ResponseAPI
// @Failure      404         {object}  types.ResponseAPI
// @Router       /v1/checkout/sessions/{session_id}/events [post]
func (h *Handler) OrderEvent(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	var req checkoutService.OrderEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.checkoutService.HandleOrderEvent(c.Param("session_id"), &req))
}
