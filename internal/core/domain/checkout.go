package domain

type CheckoutItem struct {
	ProductID string
	Quantity  uint32
}

// CheckoutInput is the client's order request. Any client-side price or
// shipping arithmetic is ignored: totals are recomputed server-side.
type CheckoutInput struct {
	Items           []CheckoutItem
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	Express         bool
}
