package models

import "github.com/shopspring/decimal"

// CreateTransactionRequest is the payload for submitting a transfer intent.
type CreateTransactionRequest struct {
	AmountSent       decimal.Decimal  `json:"amount_sent"`
	Type             string           `json:"type"`
	RecipientDetails RecipientDetails `json:"recipient_details"`
	// Pin is required only for users who have a transaction PIN set.
	Pin string `json:"pin,omitempty"`
}

// CreateRateAlertRequest is the payload for registering a rate alert.
type CreateRateAlertRequest struct {
	TargetRate decimal.Decimal `json:"target_rate"`
	Direction  AlertDirection  `json:"direction"`
}

// UpdateStatusRequest is the admin status-override payload.
type UpdateStatusRequest struct {
	Status TransactionStatus `json:"status"`
}

// AttachProofRequest carries the uploaded payment-proof URL.
type AttachProofRequest struct {
	ProofURL string `json:"proof_url"`
}

// UpdateConfigRequest carries a new system configuration value.
type UpdateConfigRequest struct {
	Value string `json:"value"`
}

// ClaimRequest identifies the transaction a vendor wants to act on.
type ClaimRequest struct {
	TransactionID int64 `json:"transaction_id"`
}
