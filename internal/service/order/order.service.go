package order

import (
	types "checkout-gateway/internal/common/type"
	"checkout-gateway/internal/pkg/crossmint"
	"checkout-gateway/internal/pkg/helper"
	"checkout-gateway/internal/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const missingKeyMessage = "Server misconfiguration: CROSSMINT_SERVER_API_KEY missing"

// CreateOrder forwards one order-creation request to the provider and relays
// the reply verbatim: the provider's body and status on both success and
// rejection. It issues exactly one outbound call and keeps no local state,
// so calling twice creates two distinct upstream orders.
func (s *Service) CreateOrder(req *CreateOrderRequest) *types.Response {
	if !s.crossmint.HasServerKey() {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: missingKeyMessage,
			Data:    ProxyError{Error: missingKeyMessage},
		})
	}

	result, err := s.crossmint.CreateOrder(s.ctx, s.buildOrderRequest(req))
	if err != nil {
		logger.Error.Printf("Failed to reach Crossmint: %v", err)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Unexpected error creating order",
			Data: ProxyError{
				Error:   "Unexpected error creating order",
				Details: err.Error(),
			},
			Error: err,
		})
	}

	if result.StatusCode < http.StatusOK || result.StatusCode >= http.StatusMultipleChoices {
		logger.Warning.Printf("Crossmint rejected order creation: status=%d", result.StatusCode)

		// A non-JSON error body (gateway HTML, truncated reply) is relayed
		// as a plain string so the mirrored response still serializes.
		var details any = result.Body
		if !json.Valid(result.Body) {
			details = string(result.Body)
		}

		return helper.ParseResponse(&types.Response{
			Code:    result.StatusCode,
			Message: "Failed to create order",
			Data: ProxyError{
				Error:   crossmint.ErrorMessage(result.Body),
				Details: details,
			},
		})
	}

	// A 2xx with a malformed body cannot be relayed as a success: the caller
	// would cache garbage as an order. Treat it like any other unexpected
	// failure.
	if !json.Valid(result.Body) {
		logger.Error.Printf("Malformed Crossmint response body: status=%d", result.StatusCode)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Unexpected error creating order",
			Data: ProxyError{
				Error:   "Unexpected error creating order",
				Details: "invalid JSON in provider response",
			},
		})
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: result.Body,
	})
}

// Create is the typed variant the checkout orchestrator consumes. Failures
// collapse to a single error whose message is fit for direct display.
func (s *Service) Create(ctx context.Context, req *CreateOrderRequest) (*crossmint.CreateOrderResponse, error) {
	if !s.crossmint.HasServerKey() {
		return nil, errors.New(missingKeyMessage)
	}

	result, err := s.crossmint.CreateOrder(ctx, s.buildOrderRequest(req))
	if err != nil {
		logger.Error.Printf("Failed to reach Crossmint: %v", err)
		return nil, errors.New("Unexpected error creating order")
	}

	if result.StatusCode < http.StatusOK || result.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.New(crossmint.ErrorMessage(result.Body))
	}

	var resp crossmint.CreateOrderResponse
	if err := json.Unmarshal(result.Body, &resp); err != nil {
		logger.Error.Printf("Malformed Crossmint response body: %v", err)
		return nil, errors.New("Unexpected error creating order")
	}

	if resp.Order.OrderID == "" || resp.ClientSecret == "" {
		return nil, fmt.Errorf("incomplete order response for amount %s", req.Amount)
	}

	return &resp, nil
}

func (s *Service) buildOrderRequest(req *CreateOrderRequest) *crossmint.OrderRequest {
	return &crossmint.OrderRequest{
		LineItems: []crossmint.LineItem{
			{
				TokenLocator: s.crossmint.TokenLocator(),
				ExecutionParameters: crossmint.ExecutionParameters{
					Mode:   crossmint.ExecutionModeExactIn,
					Amount: req.Amount,
				},
			},
		},
		Payment: crossmint.Payment{
			Method:       crossmint.PaymentMethodCheckoutFlow,
			ReceiptEmail: req.ReceiptEmail,
		},
		Recipient: crossmint.Recipient{
			WalletAddress: req.WalletAddress,
		},
	}
}
