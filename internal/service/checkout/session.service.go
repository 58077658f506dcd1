package checkout

import (
	"checkout-gateway/internal/common/enum"
	"checkout-gateway/internal/pkg/crossmint"
	"checkout-gateway/internal/pkg/validation"
	orderService "checkout-gateway/internal/service/order"
	"context"
	"strconv"
	"sync"

	"github.com/samber/lo"
)

// Step is the checkout UI stage a session is in.
type Step string

const (
	StepOptions    Step = "options"
	StepProcessing Step = "processing"
	StepCompleted  Step = "completed"
)

// OrderCreator is the slice of the order service a session needs.
type OrderCreator interface {
	Create(ctx context.Context, req *orderService.CreateOrderRequest) (*crossmint.CreateOrderResponse, error)
}

// Hooks notify the host application of provider-reported transitions. Nil
// funcs are skipped.
type Hooks struct {
	OnProcessingPayment func()
	OnPaymentCompleted  func()
}

// Session drives one checkout from amount entry to completion:
// Idle -> Creating -> Ready -> (Completed | Failed). Order creation fires at
// most once per session; after it succeeds, the populated order id blocks
// the guard for good. All state is session-scoped and dies with the session.
type Session struct {
	ID string

	mu            sync.Mutex
	amount        string
	receiptEmail  string
	walletAddress string

	orderID         string
	clientSecret    string
	isCreatingOrder bool
	orderError      string

	lastOrder *crossmint.Order
	lastPhase enum.OrderPhaseEnum
	step      Step

	orders OrderCreator
	hooks  Hooks
}

func NewSession(id string, orders OrderCreator, amount, receiptEmail, walletAddress string, hooks Hooks) *Session {
	return &Session{
		ID:            id,
		amount:        amount,
		receiptEmail:  receiptEmail,
		walletAddress: walletAddress,
		step:          StepOptions,
		orders:        orders,
		hooks:         hooks,
	}
}

// Evaluate runs the guarded creation transition. The guard (amount present,
// amount valid, no order yet, no creation in flight, no pending error) is
// the sole idempotency mechanism: however often inputs re-evaluate, the
// upstream call happens at most once. A failed attempt is not auto-retried;
// SetAmount clears the error and re-arms. The winning caller performs the
// call synchronously; concurrent callers see isCreatingOrder and return.
func (s *Session) Evaluate(ctx context.Context) {
	s.mu.Lock()
	if s.amount == "" || !validation.IsAmountValid(s.amount) || s.orderID != "" || s.isCreatingOrder || s.orderError != "" {
		s.mu.Unlock()
		return
	}

	s.isCreatingOrder = true
	req := orderService.CreateOrderRequest{
		Amount:        s.amount,
		ReceiptEmail:  s.receiptEmail,
		WalletAddress: s.walletAddress,
	}
	s.mu.Unlock()

	resp, err := s.orders.Create(ctx, &req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isCreatingOrder = false
	if err != nil {
		s.orderError = err.Error()
		return
	}

	s.orderID = resp.Order.OrderID
	s.clientSecret = resp.ClientSecret
	s.lastOrder = &resp.Order
	s.lastPhase = resp.Order.Phase
}

// SetAmount replaces the input amount. A changed amount clears any previous
// creation error so the guard can re-arm; the order id, once set, still
// blocks re-creation.
func (s *Session) SetAmount(amount string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount != s.amount {
		s.amount = amount
		s.orderError = ""
	}
}

// HandleOrderEvent ingests a provider-pushed order object from the embedded
// payment surface. Hooks fire at most once per transition into the
// "delivery" and "completed" phases; other phases only refresh the cached
// order (and with it the quote the breakdown reads).
func (s *Session) HandleOrderEvent(order *crossmint.Order) {
	s.mu.Lock()

	s.lastOrder = order
	previous := s.lastPhase
	s.lastPhase = order.Phase

	var notify func()
	if order.Phase != previous {
		switch order.Phase {
		case enum.PhaseDelivery:
			s.step = StepProcessing
			notify = s.hooks.OnProcessingPayment
		case enum.PhaseCompleted:
			s.step = StepCompleted
			notify = s.hooks.OnPaymentCompleted
		}
	}
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// View renders the session state. Rules, in order: the breakdown shows only
// in the options step; an error displays exclusively; the creating flag is a
// non-blocking indicator; the embedded checkout mounts only when amount is
// valid, order id and client secret exist, and neither a creation nor an
// error is pending.
func (s *Session) View() *SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &SessionView{
		SessionID:     s.ID,
		Step:          s.step,
		Amount:        s.amount,
		IsAmountValid: s.amount != "" && validation.IsAmountValid(s.amount),
		OrderError:    s.orderError,
	}

	if s.step == StepOptions {
		view.Breakdown = s.breakdown()
	}

	if s.orderError != "" {
		return view
	}

	view.IsCreatingOrder = s.isCreatingOrder

	if view.IsAmountValid && s.orderID != "" && s.clientSecret != "" && !s.isCreatingOrder {
		view.Checkout = &EmbeddedCheckoutParams{
			OrderID:      s.orderID,
			ClientSecret: s.clientSecret,
			Payment: PaymentConfig{
				ReceiptEmail:  s.receiptEmail,
				Crypto:        MethodToggle{Enabled: false},
				Fiat:          MethodToggle{Enabled: true},
				DefaultMethod: "fiat",
			},
		}
	}

	return view
}

// breakdown computes the cost display from the latest known quote, falling
// back to the raw input amount before any quote exists. Callers hold s.mu.
func (s *Session) breakdown() *AmountBreakdown {
	inputAmount, _ := strconv.ParseFloat(s.amount, 64)

	var quote *crossmint.Quote
	if s.lastOrder != nil {
		quote = lo.FirstOrEmpty(s.lastOrder.LineItems).Quote
	}

	if quote == nil {
		return &AmountBreakdown{
			InputAmount: inputAmount,
			TotalAmount: inputAmount,
		}
	}

	return &AmountBreakdown{
		InputAmount:  lo.Ternary(quote.InputAmount > 0, quote.InputAmount, inputAmount),
		OutputAmount: quote.OutputAmount,
		FeeAmount:    quote.FeeAmount,
		TotalAmount:  quote.TotalAmount,
		Quoted:       true,
	}
}
