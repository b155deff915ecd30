package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecipientDetails_Validate(t *testing.T) {
	valid := RecipientDetails{Kind: RecipientMomo, Name: "Ama Mensah", Account: "0244000000"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		details RecipientDetails
	}{
		{"unknown kind", RecipientDetails{Kind: "cash", Name: "A", Account: "1"}},
		{"missing name", RecipientDetails{Kind: RecipientBank, Account: "1"}},
		{"missing account", RecipientDetails{Kind: RecipientPaypal, Name: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.details.Validate())
		})
	}
}

func TestRecipientDetails_Scan(t *testing.T) {
	var rd RecipientDetails
	err := rd.Scan([]byte(`{"kind": "bank", "name": "Ama Mensah", "account": "GH-001"}`))

	assert.NoError(t, err)
	assert.Equal(t, RecipientBank, rd.Kind)
	assert.Equal(t, "GH-001", rd.Account)

	assert.NoError(t, rd.Scan(nil))
	assert.Equal(t, RecipientDetails{}, rd)

	assert.Error(t, rd.Scan(42))
}

func TestTransaction_CurrencyLegs(t *testing.T) {
	tx := &Transaction{Type: "GHS-CAD"}
	assert.Equal(t, "GHS", tx.SourceCurrency())
	assert.Equal(t, "CAD", tx.TargetCurrency())

	malformed := &Transaction{Type: "GHSCAD"}
	assert.Equal(t, "GHSCAD", malformed.SourceCurrency())
	assert.Equal(t, "", malformed.TargetCurrency())
}

func TestRateAlert_ShouldTrigger(t *testing.T) {
	target := decimal.NewFromInt(15)

	above := &RateAlert{TargetRate: target, Direction: AlertAbove}
	assert.False(t, above.ShouldTrigger(decimal.RequireFromString("14.99")))
	assert.True(t, above.ShouldTrigger(target))
	assert.True(t, above.ShouldTrigger(decimal.NewFromInt(16)))

	below := &RateAlert{TargetRate: target, Direction: AlertBelow}
	assert.True(t, below.ShouldTrigger(decimal.NewFromInt(14)))
	assert.False(t, below.ShouldTrigger(decimal.NewFromInt(16)))

	unknown := &RateAlert{TargetRate: target, Direction: "sideways"}
	assert.False(t, unknown.ShouldTrigger(decimal.NewFromInt(20)))
}
