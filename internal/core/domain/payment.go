package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// PaymentCallback is the parsed provider callback, decoupled from the wire
// envelope that carried it.
type PaymentCallback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Amount            decimal.Decimal
	ReceiptNumber     string
	Phone             string
	TransactionDate   time.Time
}

func (cb PaymentCallback) Success() bool {
	return cb.ResultCode == 0
}

// CallbackOutcome classifies what applying a callback did, for metrics and
// logging. Every outcome is acknowledged to the provider the same way.
type CallbackOutcome string

const (
	// CallbackApplied - the order was marked paid by this callback.
	CallbackApplied CallbackOutcome = "applied"
	// CallbackDuplicate - the order was already paid; no-op.
	CallbackDuplicate CallbackOutcome = "duplicate"
	// CallbackOrphaned - no order matches the correlation id; no-op.
	CallbackOrphaned CallbackOutcome = "orphaned"
	// CallbackRejected - the provider reported a non-success result code.
	CallbackRejected CallbackOutcome = "rejected"
	// CallbackIgnored - the order is cancelled; payment not applied.
	CallbackIgnored CallbackOutcome = "ignored"
)
