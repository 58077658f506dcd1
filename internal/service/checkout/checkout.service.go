package checkout

import (
	types "checkout-gateway/internal/common/type"
	"checkout-gateway/internal/pkg/crossmint"
	"checkout-gateway/internal/pkg/helper"
	"checkout-gateway/internal/pkg/logger"
	"net/http"

	"github.com/google/uuid"
)

// CreateSession opens a checkout session and immediately evaluates the
// creation guard, so a valid amount triggers the (single) order-creation
// call before the first view is returned. An invalid or empty amount is not
// an error: the session stays idle with validity feedback in the view.
func (s *Service) CreateSession(req *CreateSessionRequest) *types.Response {
	session := NewSession(
		uuid.NewString(),
		s.orders,
		req.Amount,
		req.ReceiptEmail,
		req.WalletAddress,
		s.loggingHooks(),
	)

	session.Evaluate(s.ctx)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusCreated,
		Message: "Checkout session created",
		Data:    session.View(),
	})
}

func (s *Service) GetSession(sessionID string) *types.Response {
	session, resp := s.find(sessionID)
	if resp != nil {
		return resp
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: session.View(),
	})
}

// UpdateAmount applies a new amount and re-evaluates the guard. A changed
// amount clears a previous creation error, so this is also the manual retry
// path after a failure.
func (s *Service) UpdateAmount(sessionID string, req *UpdateAmountRequest) *types.Response {
	session, resp := s.find(sessionID)
	if resp != nil {
		return resp
	}

	session.SetAmount(req.Amount)
	session.Evaluate(s.ctx)

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: session.View(),
	})
}

// HandleOrderEvent ingests an order object reported by the embedded payment
// surface and returns the refreshed view.
func (s *Service) HandleOrderEvent(sessionID string, req *OrderEventRequest) *types.Response {
	session, resp := s.find(sessionID)
	if resp != nil {
		return resp
	}

	order, err := helper.JSONToStruct[crossmint.Order](req.Order)
	if err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid order payload",
			Error:   err,
		})
	}

	session.HandleOrderEvent(order)

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: session.View(),
	})
}

func (s *Service) find(sessionID string) (*Session, *types.Response) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, helper.ParseResponse(&types.Response{
			Code:    http.StatusNotFound,
			Message: "Checkout session not found",
		})
	}

	return session, nil
}

func (s *Service) loggingHooks() Hooks {
	return Hooks{
		OnProcessingPayment: func() {
			logger.Info.Println("Checkout entered delivery: payment processing")
		},
		OnPaymentCompleted: func() {
			logger.Info.Println("Checkout completed")
		},
	}
}
