package crossmint

import (
	"checkout-gateway/internal/common/enum"
	"encoding/json"
)

const (
	// ExecutionModeExactIn: the fiat amount is exact, the provider computes
	// the output token amount.
	ExecutionModeExactIn = "exact-in"

	// PaymentMethodCheckoutFlow is Crossmint's hosted fiat card flow.
	PaymentMethodCheckoutFlow = "checkoutcom-flow"
)

type ExecutionParameters struct {
	Mode   string `json:"mode"`
	Amount string `json:"amount"`
}

// Quote is the provider's cost breakdown for a line item. Amounts are in the
// checkout's base currency.
type Quote struct {
	InputAmount  float64 `json:"inputAmount"`
	OutputAmount float64 `json:"outputAmount"`
	FeeAmount    float64 `json:"feeAmount"`
	TotalAmount  float64 `json:"totalAmount"`
}

type LineItem struct {
	TokenLocator        string              `json:"tokenLocator"`
	ExecutionParameters ExecutionParameters `json:"executionParameters"`
	Quote               *Quote              `json:"quote,omitempty"`
}

type Recipient struct {
	WalletAddress string `json:"walletAddress"`
}

type Payment struct {
	Method       string `json:"method"`
	ReceiptEmail string `json:"receiptEmail"`
}

// OrderRequest is the body posted to the provider's order-creation endpoint.
type OrderRequest struct {
	LineItems []LineItem `json:"lineItems"`
	Payment   Payment    `json:"payment"`
	Recipient Recipient  `json:"recipient"`
}

// Order is the provider-side order record. Only Phase and the line-item
// quotes change over its observed lifetime.
type Order struct {
	OrderID   string              `json:"orderId"`
	LineItems []LineItem          `json:"lineItems"`
	Recipient Recipient           `json:"recipient"`
	Payment   Payment             `json:"payment"`
	Phase     enum.OrderPhaseEnum `json:"phase"`
}

// CreateOrderResponse pairs the created order with the client secret that
// authorizes the embedded payment UI to complete it.
type CreateOrderResponse struct {
	Order        Order  `json:"order"`
	ClientSecret string `json:"clientSecret"`
}

// APIResult is a raw provider reply: status code plus unparsed body, so the
// proxy can relay both verbatim.
type APIResult struct {
	StatusCode int
	Body       json.RawMessage
}

// ErrorMessage extracts a human-readable error from a provider error body,
// falling back to a generic message when the body has no usable field.
func ErrorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return "Failed to create order"
}
