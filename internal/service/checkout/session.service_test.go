package checkout

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"

	"checkout-gateway/internal/common/enum"
	"checkout-gateway/internal/pkg/crossmint"
	"checkout-gateway/internal/pkg/logger"
	orderService "checkout-gateway/internal/service/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup()
	os.Exit(m.Run())
}

type fakeCreator struct {
	calls int64
	resp  *crossmint.CreateOrderResponse
	err   error
}

func (f *fakeCreator) Create(_ context.Context, _ *orderService.CreateOrderRequest) (*crossmint.CreateOrderResponse, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func okCreator() *fakeCreator {
	return &fakeCreator{
		resp: &crossmint.CreateOrderResponse{
			Order: crossmint.Order{
				OrderID: "ord_1",
				Phase:   enum.PhasePayment,
			},
			ClientSecret: "cs_1",
		},
	}
}

func newTestSession(creator OrderCreator, amount string, hooks Hooks) *Session {
	return NewSession("sess_1", creator, amount, "a@b.com", "0xAbC", hooks)
}

// state returns a consistent snapshot of the machine's variables.
func (s *Session) state() (orderID, clientSecret string, creating bool, orderError string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderID, s.clientSecret, s.isCreatingOrder, s.orderError
}

func TestEvaluate_CreatesOnce(t *testing.T) {
	creator := okCreator()
	s := newTestSession(creator, "25.00", Hooks{})

	// Repeated re-evaluation with unchanged inputs must not re-issue the call.
	for i := 0; i < 5; i++ {
		s.Evaluate(context.Background())
	}

	assert.Equal(t, int64(1), atomic.LoadInt64(&creator.calls))

	orderID, clientSecret, creating, orderError := s.state()
	assert.Equal(t, "ord_1", orderID)
	assert.Equal(t, "cs_1", clientSecret)
	assert.False(t, creating)
	assert.Empty(t, orderError)
}

func TestEvaluate_InvalidAmountNeverCreates(t *testing.T) {
	for _, amount := range []string{"", "0", "-5", "abc", "25.001"} {
		creator := okCreator()
		s := newTestSession(creator, amount, Hooks{})

		s.Evaluate(context.Background())
		s.Evaluate(context.Background())

		assert.Equal(t, int64(0), atomic.LoadInt64(&creator.calls), "amount %q must not trigger creation", amount)
	}
}

func TestEvaluate_FailureDoesNotAutoRetry(t *testing.T) {
	creator := &fakeCreator{err: errors.New("Failed to create order")}
	s := newTestSession(creator, "25.00", Hooks{})

	s.Evaluate(context.Background())
	_, _, creating, orderError := s.state()
	assert.False(t, creating)
	assert.Equal(t, "Failed to create order", orderError)

	// Re-evaluation with unchanged inputs stays Failed.
	s.Evaluate(context.Background())
	assert.Equal(t, int64(1), atomic.LoadInt64(&creator.calls))
}

func TestSetAmount_ChangeClearsErrorAndRearms(t *testing.T) {
	creator := &fakeCreator{err: errors.New("upstream down")}
	s := newTestSession(creator, "25.00", Hooks{})
	s.Evaluate(context.Background())

	// Same amount: still stuck.
	s.SetAmount("25.00")
	s.Evaluate(context.Background())
	assert.Equal(t, int64(1), atomic.LoadInt64(&creator.calls))

	// Changed amount: error cleared, guard re-armed, retry succeeds.
	creator.err = nil
	creator.resp = okCreator().resp
	s.SetAmount("30.00")
	s.Evaluate(context.Background())

	assert.Equal(t, int64(2), atomic.LoadInt64(&creator.calls))
	orderID, _, _, orderError := s.state()
	assert.Equal(t, "ord_1", orderID)
	assert.Empty(t, orderError)
}

func TestView_MountGate(t *testing.T) {
	s := newTestSession(okCreator(), "25.00", Hooks{})

	// Before creation: no checkout params.
	view := s.View()
	assert.Nil(t, view.Checkout)
	assert.True(t, view.IsAmountValid)

	s.Evaluate(context.Background())

	view = s.View()
	require.NotNil(t, view.Checkout)
	assert.Equal(t, "ord_1", view.Checkout.OrderID)
	assert.Equal(t, "cs_1", view.Checkout.ClientSecret)
	assert.Equal(t, "a@b.com", view.Checkout.Payment.ReceiptEmail)
	assert.False(t, view.Checkout.Payment.Crypto.Enabled)
	assert.True(t, view.Checkout.Payment.Fiat.Enabled)
	assert.Equal(t, "fiat", view.Checkout.Payment.DefaultMethod)
}

func TestView_ErrorDisplaysExclusively(t *testing.T) {
	creator := &fakeCreator{err: errors.New("Failed to create order")}
	s := newTestSession(creator, "25.00", Hooks{})
	s.Evaluate(context.Background())

	view := s.View()
	assert.Equal(t, "Failed to create order", view.OrderError)
	assert.Nil(t, view.Checkout, "no payment surface after a failed creation")
	assert.False(t, view.IsCreatingOrder)
}

func TestHandleOrderEvent_PhaseHooks(t *testing.T) {
	var processing, completed int
	s := newTestSession(okCreator(), "25.00", Hooks{
		OnProcessingPayment: func() { processing++ },
		OnPaymentCompleted:  func() { completed++ },
	})
	s.Evaluate(context.Background())

	deliveryOrder := &crossmint.Order{OrderID: "ord_1", Phase: enum.PhaseDelivery}
	s.HandleOrderEvent(deliveryOrder)
	s.HandleOrderEvent(deliveryOrder)

	assert.Equal(t, 1, processing, "delivery hook fires once per transition into the phase")
	assert.Equal(t, 0, completed)
	assert.Equal(t, StepProcessing, s.View().Step)

	s.HandleOrderEvent(&crossmint.Order{OrderID: "ord_1", Phase: enum.PhaseCompleted})
	assert.Equal(t, 1, completed)
	assert.Equal(t, StepCompleted, s.View().Step)
}

func TestHandleOrderEvent_OtherPhasesIgnored(t *testing.T) {
	var processing, completed int
	s := newTestSession(okCreator(), "25.00", Hooks{
		OnProcessingPayment: func() { processing++ },
		OnPaymentCompleted:  func() { completed++ },
	})
	s.Evaluate(context.Background())

	s.HandleOrderEvent(&crossmint.Order{OrderID: "ord_1", Phase: enum.PhaseQuote})
	s.HandleOrderEvent(&crossmint.Order{OrderID: "ord_1", Phase: "expired"})

	assert.Zero(t, processing)
	assert.Zero(t, completed)
	assert.Equal(t, StepOptions, s.View().Step)
}

func TestView_Breakdown(t *testing.T) {
	s := newTestSession(okCreator(), "25.00", Hooks{})

	// No quote yet: totals echo the input amount.
	view := s.View()
	require.NotNil(t, view.Breakdown)
	assert.False(t, view.Breakdown.Quoted)
	assert.InDelta(t, 25.0, view.Breakdown.InputAmount, 0.0001)
	assert.InDelta(t, 25.0, view.Breakdown.TotalAmount, 0.0001)

	s.Evaluate(context.Background())
	s.HandleOrderEvent(&crossmint.Order{
		OrderID: "ord_1",
		Phase:   enum.PhasePayment,
		LineItems: []crossmint.LineItem{
			{
				Quote: &crossmint.Quote{
					InputAmount:  25,
					OutputAmount: 24.8,
					FeeAmount:    1.2,
					TotalAmount:  26.2,
				},
			},
		},
	})

	view = s.View()
	require.NotNil(t, view.Breakdown)
	assert.True(t, view.Breakdown.Quoted)
	assert.InDelta(t, 24.8, view.Breakdown.OutputAmount, 0.0001)
	assert.InDelta(t, 1.2, view.Breakdown.FeeAmount, 0.0001)
	assert.InDelta(t, 26.2, view.Breakdown.TotalAmount, 0.0001)
}

func TestView_BreakdownOnlyInOptionsStep(t *testing.T) {
	s := newTestSession(okCreator(), "25.00", Hooks{})
	s.Evaluate(context.Background())

	s.HandleOrderEvent(&crossmint.Order{OrderID: "ord_1", Phase: enum.PhaseDelivery})
	assert.Nil(t, s.View().Breakdown)
}
