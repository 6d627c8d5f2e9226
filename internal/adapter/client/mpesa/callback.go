package mpesa

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/sokonihq/sokoni/internal/core/domain"
)

// CallbackEnvelope mirrors the provider's nested callback payload:
// {Body: {stkCallback: {..., CallbackMetadata: {Item: [{Name, Value}]}}}}.
type CallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string            `json:"MerchantRequestID"`
			CheckoutRequestID string            `json:"CheckoutRequestID"`
			ResultCode        int               `json:"ResultCode"`
			ResultDesc        string            `json:"ResultDesc"`
			CallbackMetadata  *callbackMetadata `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type callbackMetadata struct {
	Item []metadataItem `json:"Item"`
}

// metadataItem is one entry of the order-independent field bag. Values are
// mixed-type (strings and numbers), so they stay raw until looked up.
type metadataItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

func (m *callbackMetadata) lookup(name string) (json.RawMessage, bool) {
	if m == nil {
		return nil, false
	}
	for _, item := range m.Item {
		if item.Name == name {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *callbackMetadata) stringValue(name string) string {
	raw, ok := m.lookup(name)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// Receipt-style fields occasionally arrive as bare numbers.
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

func (m *callbackMetadata) decimalValue(name string) decimal.Decimal {
	raw, ok := m.lookup(name)
	if !ok {
		return decimal.Zero
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if d, err := decimal.NewFromFloat64(f); err == nil {
			return d
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := decimal.Parse(s); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// ParseCallback decodes a raw callback body into the domain form. Metadata
// fields are looked up by name, never by position; missing fields degrade
// to zero values rather than failing the whole callback.
func ParseCallback(body []byte) (domain.PaymentCallback, error) {
	var env CallbackEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.PaymentCallback{}, fmt.Errorf("decode callback envelope: %w", err)
	}

	stk := env.Body.StkCallback
	if stk.CheckoutRequestID == "" {
		return domain.PaymentCallback{}, fmt.Errorf("callback has no CheckoutRequestID")
	}

	cb := domain.PaymentCallback{
		MerchantRequestID: stk.MerchantRequestID,
		CheckoutRequestID: stk.CheckoutRequestID,
		ResultCode:        stk.ResultCode,
		ResultDesc:        stk.ResultDesc,
	}

	if stk.ResultCode == 0 {
		meta := stk.CallbackMetadata
		cb.Amount = meta.decimalValue("Amount")
		cb.ReceiptNumber = meta.stringValue("MpesaReceiptNumber")
		cb.Phone = meta.stringValue("PhoneNumber")
		if ts := meta.stringValue("TransactionDate"); ts != "" {
			if t, err := time.Parse(timestampLayout, ts); err == nil {
				cb.TransactionDate = t
			}
		}
	}

	return cb, nil
}
