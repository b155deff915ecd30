package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transfer.
// Vendor-driven transitions are pending -> processing -> sent; admin overrides
// may set any value.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionSent       TransactionStatus = "sent"
)

// RecipientKind is the payout method for a transfer.
type RecipientKind string

const (
	RecipientMomo   RecipientKind = "momo"
	RecipientBank   RecipientKind = "bank"
	RecipientPaypal RecipientKind = "paypal"
)

// RecipientDetails describes where the vendor should deliver funds. Stored as
// a JSONB column; the shape is validated at creation time.
type RecipientDetails struct {
	Kind           RecipientKind `json:"kind"`
	Name           string        `json:"name"`
	Account        string        `json:"account"`
	AdminReference string        `json:"admin_reference,omitempty"`
}

// Validate checks the closed union shape.
func (rd RecipientDetails) Validate() error {
	switch rd.Kind {
	case RecipientMomo, RecipientBank, RecipientPaypal:
	default:
		return fmt.Errorf("unknown recipient kind %q", rd.Kind)
	}
	if rd.Name == "" {
		return fmt.Errorf("recipient name is required")
	}
	if rd.Account == "" {
		return fmt.Errorf("recipient account is required")
	}
	return nil
}

// Value implements driver.Valuer for JSONB storage.
func (rd RecipientDetails) Value() (driver.Value, error) {
	return json.Marshal(rd)
}

// Scan implements sql.Scanner for JSONB storage.
func (rd *RecipientDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, rd)
	case string:
		return json.Unmarshal([]byte(v), rd)
	case nil:
		*rd = RecipientDetails{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into RecipientDetails", src)
	}
}

// Transaction is a transfer intent and its manual fulfillment status. Rows are
// never hard-deleted.
type Transaction struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	VendorID  *int64 `json:"vendor_id" db:"vendor_id"`
	Type      string `json:"type" db:"type"`

	AmountSent decimal.Decimal `json:"amount_sent" db:"amount_sent"`
	// ExchangeRate is captured at creation and never recalculated; later rate
	// refreshes do not touch existing rows.
	ExchangeRate   decimal.Decimal `json:"exchange_rate" db:"exchange_rate"`
	AmountReceived decimal.Decimal `json:"amount_received" db:"amount_received"`

	RecipientDetails RecipientDetails  `json:"recipient_details" db:"recipient_details"`
	Status           TransactionStatus `json:"status" db:"status"`
	ProofURL         string            `json:"proof_url" db:"proof_url"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	SentAt    *time.Time `json:"sent_at,omitempty" db:"sent_at"`
}

// SourceCurrency returns the source leg of the pair type, e.g. "GHS" for
// "GHS-CAD". Falls back to the whole type string for malformed values.
func (t *Transaction) SourceCurrency() string {
	if i := strings.Index(t.Type, "-"); i > 0 {
		return t.Type[:i]
	}
	return t.Type
}

// TargetCurrency returns the destination leg of the pair type.
func (t *Transaction) TargetCurrency() string {
	if i := strings.Index(t.Type, "-"); i >= 0 && i+1 < len(t.Type) {
		return t.Type[i+1:]
	}
	return ""
}
