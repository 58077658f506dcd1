package order

import (
	types "checkout-gateway/internal/common/type"
	"checkout-gateway/internal/pkg/crossmint"
	"context"
)

type Service struct {
	ctx       context.Context
	crossmint *crossmint.Client
}

type IService interface {
	CreateOrder(req *CreateOrderRequest) *types.Response
	Create(ctx context.Context, req *CreateOrderRequest) (*crossmint.CreateOrderResponse, error)
}

func NewService(ctx context.Context, crossmintClient *crossmint.Client) IService {
	return &Service{
		ctx:       ctx,
		crossmint: crossmintClient,
	}
}

// Request/Response DTOs

type CreateOrderRequest struct {
	Amount        string `json:"amount" binding:"required"`
	ReceiptEmail  string `json:"receiptEmail" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// ProxyError is the error body the proxy route emits. It mirrors the
// provider's shape so the frontend handles local and upstream failures the
// same way.
type ProxyError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
