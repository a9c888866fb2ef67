package gateway

import "context"

// SessionPaid is the provider-reported status that allows reconciliation to
// mutate local state.
const SessionPaid = "paid"

type CheckoutItem struct {
	Name        string
	Description string
	AmountCents int64
	Currency    string
}

type CheckoutParams struct {
	Item          CheckoutItem
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Session is the provider's view of a checkout session at retrieval time.
// Metadata carries the correlation keys embedded at creation; it is the only
// link between the provider callback and local records.
type Session struct {
	ID            string
	TransactionID string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// Payment is the hosted-checkout provider contract.
type Payment interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}
