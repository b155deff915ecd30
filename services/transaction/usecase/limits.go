package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/transaction"
)

// tieredLimitsKey is the system_config key that overrides the default caps.
const tieredLimitsKey = "tiered_limits"

// tierCaps are daily spend ceilings in reference currency units, escalating
// with verification level. KYC verification always grants the top cap, even
// when the email flag is unset.
type tierCaps struct {
	Base          decimal.Decimal `json:"base"`
	EmailVerified decimal.Decimal `json:"email_verified"`
	KYCVerified   decimal.Decimal `json:"kyc_verified"`
}

func defaultTierCaps() tierCaps {
	return tierCaps{
		Base:          decimal.NewFromInt(50),
		EmailVerified: decimal.NewFromInt(500),
		KYCVerified:   decimal.NewFromInt(5000),
	}
}

// LimitEvaluator decides whether a prospective transfer fits under the user's
// daily ceiling. It runs before any row is persisted, so a rejection leaves no
// partial writes behind.
type LimitEvaluator struct {
	cfg        *models.Config
	txRepo     transaction.TransactionRepo
	configRepo transaction.ConfigRepo
}

// NewLimitEvaluator creates a new limit evaluator
func NewLimitEvaluator(cfg *models.Config, txRepo transaction.TransactionRepo, configRepo transaction.ConfigRepo) *LimitEvaluator {
	return &LimitEvaluator{cfg: cfg, txRepo: txRepo, configRepo: configRepo}
}

// referenceAmount converts an amount in the given source currency into
// reference units using a static divisor. This is a deliberate approximation
// for limit checks only, distinct from the live rate locked into transactions.
func (l *LimitEvaluator) referenceAmount(currency string, amount decimal.Decimal) decimal.Decimal {
	if currency == "GHS" {
		divisor := decimal.NewFromFloat(l.cfg.Limits.GHSDivisor)
		if divisor.IsPositive() {
			return amount.Div(divisor)
		}
	}
	// CAD and anything unknown count 1:1.
	return amount
}

// capFor returns the user's daily cap and the action that unlocks the next
// tier.
func (l *LimitEvaluator) capFor(ctx context.Context, user *models.User) (decimal.Decimal, string) {
	caps := defaultTierCaps()
	if raw, ok, err := l.configRepo.GetValue(ctx, tieredLimitsKey); err != nil {
		logger.Warn("Failed to read tiered limits override, using defaults", logger.Err(err))
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &caps); err != nil {
			logger.Warn("Malformed tiered limits override, using defaults", logger.Err(err))
			caps = defaultTierCaps()
		}
	}

	switch {
	case user.KYCStatus == models.KYCVerified:
		return caps.KYCVerified, "You are at the maximum tier."
	case user.EmailVerified:
		return caps.EmailVerified, "Complete KYC verification to raise your daily limit."
	default:
		return caps.Base, "Verify your email address to raise your daily limit."
	}
}

// Check evaluates a prospective transfer against the user's remaining daily
// allowance. The day boundary is local midnight.
func (l *LimitEvaluator) Check(ctx context.Context, user *models.User, sourceCurrency string, amountSent decimal.Decimal) error {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	usageByCurrency, err := l.txRepo.DailyUsageByCurrency(ctx, user.ID, midnight)
	if err != nil {
		return fmt.Errorf("failed to compute daily usage: %w", err)
	}

	usage := decimal.Zero
	for currency, total := range usageByCurrency {
		usage = usage.Add(l.referenceAmount(currency, total))
	}

	prospective := l.referenceAmount(sourceCurrency, amountSent)
	cap, nextStep := l.capFor(ctx, user)

	if usage.Add(prospective).GreaterThan(cap) {
		return &apperr.LimitExceededError{
			Usage:       usage,
			Prospective: prospective,
			Cap:         cap,
			NextStep:    nextStep,
		}
	}

	return nil
}
