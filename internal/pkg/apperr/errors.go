// Package apperr defines the error taxonomy surfaced to API callers.
// Downstream notification/audit failures are deliberately absent: those are
// logged at the call site and never propagated.
package apperr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound covers absent ids and rows not owned by the actor.
	ErrNotFound = errors.New("not found")

	// ErrClaimConflict is returned when a claim precondition check fails,
	// typically because another vendor won the race. Safe to retry against a
	// different transaction.
	ErrClaimConflict = errors.New("transaction already accepted or unavailable")

	// ErrRateUnavailable means the market source is unreachable and no cached
	// rate exists for the pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// LimitExceededError reports a daily spend-cap breach with enough context for
// the user to self-remediate.
type LimitExceededError struct {
	Usage       decimal.Decimal
	Prospective decimal.Decimal
	Cap         decimal.Decimal
	// NextStep names the unlock action: verify email, complete KYC, or
	// "at max tier".
	NextStep string
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf(
		"daily limit exceeded: %s of %s reference units used today, this transfer adds %s. %s",
		e.Usage.StringFixed(2), e.Cap.StringFixed(2), e.Prospective.StringFixed(2), e.NextStep,
	)
}

// IsLimitExceeded reports whether err is a LimitExceededError.
func IsLimitExceeded(err error) bool {
	var le *LimitExceededError
	return errors.As(err, &le)
}
