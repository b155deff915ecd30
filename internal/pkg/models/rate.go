package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPair is the pair assumed when a request omits one.
const DefaultPair = "GHS-CAD"

// Rate is the last computed sell rate for a currency pair. One row per pair,
// refreshed opportunistically on each quote; the previous value is the
// fallback when the market source is unreachable.
type Rate struct {
	Pair      string          `json:"pair" db:"pair"`
	Rate      decimal.Decimal `json:"rate" db:"rate"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// RateQuote is the client-facing view of a rate lookup.
type RateQuote struct {
	Pair          string           `json:"pair"`
	Rate          decimal.Decimal  `json:"rate"`
	MarketRate    *decimal.Decimal `json:"market_rate,omitempty"`
	FeePercentage float64          `json:"fee_percentage"`
	// Note is populated only on the fallback path ("Using cached rate").
	Note string `json:"note,omitempty"`
}

// AlertDirection says which side of the target rate triggers an alert.
type AlertDirection string

const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// RateAlert is a user-registered one-shot threshold on the CAD->GHS market
// rate. Once triggered it is deactivated; there is no cooldown or re-arming.
type RateAlert struct {
	ID         int64           `json:"id" db:"id"`
	UserID     int64           `json:"user_id" db:"user_id"`
	TargetRate decimal.Decimal `json:"target_rate" db:"target_rate"`
	Direction  AlertDirection  `json:"direction" db:"direction"`
	IsActive   bool            `json:"is_active" db:"is_active"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// ShouldTrigger reports whether the alert fires at the given market rate.
func (a *RateAlert) ShouldTrigger(current decimal.Decimal) bool {
	switch a.Direction {
	case AlertAbove:
		return current.GreaterThanOrEqual(a.TargetRate)
	case AlertBelow:
		return current.LessThanOrEqual(a.TargetRate)
	default:
		return false
	}
}
