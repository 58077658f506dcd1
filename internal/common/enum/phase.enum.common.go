package enum

// OrderPhaseEnum is the provider-reported lifecycle stage of an order.
// Only Delivery and Completed drive transitions here; everything else is
// observed and ignored.
type OrderPhaseEnum string

const (
	PhaseQuote     OrderPhaseEnum = "quote"
	PhasePayment   OrderPhaseEnum = "payment"
	PhaseDelivery  OrderPhaseEnum = "delivery"
	PhaseCompleted OrderPhaseEnum = "completed"
)
