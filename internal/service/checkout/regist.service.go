package checkout

import (
	types "checkout-gateway/internal/common/type"
	"context"
	"sync"
)

type Service struct {
	ctx    context.Context
	orders OrderCreator

	mu       sync.RWMutex
	sessions map[string]*Session
}

type IService interface {
	CreateSession(req *CreateSessionRequest) *types.Response
	GetSession(sessionID string) *types.Response
	UpdateAmount(sessionID string, req *UpdateAmountRequest) *types.Response
	HandleOrderEvent(sessionID string, req *OrderEventRequest) *types.Response
}

func NewService(ctx context.Context, orders OrderCreator) IService {
	return &Service{
		ctx:      ctx,
		orders:   orders,
		sessions: make(map[string]*Session),
	}
}

// Request/Response DTOs

type CreateSessionRequest struct {
	Amount        string `json:"amount"`
	ReceiptEmail  string `json:"receiptEmail" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
}

type UpdateAmountRequest struct {
	Amount string `json:"amount"`
}

// OrderEventRequest carries the order object the embedded payment surface
// reported. Kept untyped at the edge; the service coerces it.
type OrderEventRequest struct {
	Order map[string]any `json:"order" binding:"required"`
}

type MethodToggle struct {
	Enabled bool `json:"enabled"`
}

// PaymentConfig is the payment-method configuration handed to the embedded
// checkout: fiat only, crypto explicitly disabled.
type PaymentConfig struct {
	ReceiptEmail  string       `json:"receiptEmail"`
	Crypto        MethodToggle `json:"crypto"`
	Fiat          MethodToggle `json:"fiat"`
	DefaultMethod string       `json:"defaultMethod"`
}

// EmbeddedCheckoutParams is everything the embedded payment surface needs to
// mount against a created order.
type EmbeddedCheckoutParams struct {
	OrderID      string        `json:"orderId"`
	ClientSecret string        `json:"clientSecret"`
	Payment      PaymentConfig `json:"payment"`
}

// AmountBreakdown is the cost display for the options step. Quoted is false
// until the provider has pushed a quote; before that the totals just echo
// the input amount.
type AmountBreakdown struct {
	InputAmount  float64 `json:"inputAmount"`
	OutputAmount float64 `json:"outputAmount"`
	FeeAmount    float64 `json:"feeAmount"`
	TotalAmount  float64 `json:"totalAmount"`
	Quoted       bool    `json:"quoted"`
}

type SessionView struct {
	SessionID       string                  `json:"sessionId"`
	Step            Step                    `json:"step"`
	Amount          string                  `json:"amount"`
	IsAmountValid   bool                    `json:"isAmountValid"`
	IsCreatingOrder bool                    `json:"isCreatingOrder"`
	OrderError      string                  `json:"orderError,omitempty"`
	Breakdown       *AmountBreakdown        `json:"breakdown,omitempty"`
	Checkout        *EmbeddedCheckoutParams `json:"checkout,omitempty"`
}
