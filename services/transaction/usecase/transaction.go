package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kdarko/sikaflow/internal/pkg/apperr"
	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	userrepo "github.com/kdarko/sikaflow/services/user/repository"
)

// validateCreate checks the request shape before anything touches storage.
func validateCreate(req models.CreateTransactionRequest) error {
	if !req.AmountSent.IsPositive() {
		return apperr.Validation("amount_sent", "must be greater than zero")
	}

	parts := strings.SplitN(req.Type, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return apperr.Validation("type", fmt.Sprintf("malformed currency pair %q", req.Type))
	}

	if err := req.RecipientDetails.Validate(); err != nil {
		return apperr.Validation("recipient_details", err.Error())
	}

	return nil
}

// Create validates the request, verifies the PIN, enforces the daily limit,
// locks the current rate and persists a pending transaction. An omitted pair
// type defaults to GHS-CAD. A validation or limit failure leaves nothing
// written.
func (uc *TransactionUC) Create(ctx context.Context, actorID int64, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Type == "" {
		req.Type = models.DefaultPair
	}

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := userrepo.VerifyPin(user, req.Pin); err != nil {
		return nil, err
	}

	sourceCurrency := strings.SplitN(req.Type, "-", 2)[0]
	if err := uc.limits.Check(ctx, user, sourceCurrency, req.AmountSent); err != nil {
		return nil, err
	}

	rate, err := uc.rates.RateForCreation(ctx, req.Type)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:           actorID,
		Type:             req.Type,
		AmountSent:       req.AmountSent,
		ExchangeRate:     rate,
		AmountReceived:   req.AmountSent.Mul(rate),
		RecipientDetails: req.RecipientDetails,
		Status:           models.TransactionPending,
	}

	created, err := uc.txRepo.Create(ctx, tx)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction created",
		logger.Int64("transaction_id", created.ID),
		logger.Int64("user_id", actorID),
		logger.String("type", created.Type),
		logger.String("amount_sent", created.AmountSent.String()))

	return created, nil
}

// List returns the actor's own transactions, or all transactions for roles
// holding the view-all capability.
func (uc *TransactionUC) List(ctx context.Context, actorID int64, role models.Role) ([]*models.Transaction, error) {
	if role.Can(models.CapViewAllTransactions) {
		return uc.txRepo.ListAll(ctx)
	}
	return uc.txRepo.ListByUser(ctx, actorID)
}

// OverrideStatus writes any status value without transition validation and
// publishes an audit event. The event is best-effort: its failure never rolls
// back the write.
func (uc *TransactionUC) OverrideStatus(ctx context.Context, actorID, id int64, status models.TransactionStatus, ip string) (*models.Transaction, error) {
	switch status {
	case models.TransactionPending, models.TransactionProcessing, models.TransactionSent:
	default:
		return nil, apperr.Validation("status", fmt.Sprintf("unknown status %q", status))
	}

	tx, err := uc.txRepo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	event := models.TransactionEvent{
		EventID:        uuid.NewString(),
		TransactionID:  tx.ID,
		UserID:         tx.UserID,
		ActorID:        actorID,
		Status:         tx.Status,
		Type:           tx.Type,
		AmountReceived: tx.AmountReceived,
		RecipientName:  tx.RecipientDetails.Name,
		IPAddress:      ip,
		OccurredAt:     time.Now(),
	}
	if err := uc.eventGW.StatusOverridden(ctx, event); err != nil {
		logger.Error("Failed to publish status-override event",
			logger.Int64("transaction_id", tx.ID),
			logger.Err(err))
	}

	return tx, nil
}

// AttachProof records the payment-proof URL on the actor's own transaction.
// Allowed at any status; last write wins.
func (uc *TransactionUC) AttachProof(ctx context.Context, actorID, id int64, url string) error {
	if url == "" {
		return apperr.Validation("proof_url", "must not be empty")
	}
	return uc.txRepo.AttachProof(ctx, id, actorID, url)
}

// UpdateConfig upserts a system configuration value. The tiered-limits payload
// is validated here so a bad override never reaches the limit check.
func (uc *TransactionUC) UpdateConfig(ctx context.Context, actorID int64, key, value string) error {
	if key == "" {
		return apperr.Validation("key", "must not be empty")
	}
	if value == "" {
		return apperr.Validation("value", "must not be empty")
	}

	if key == tieredLimitsKey {
		var caps tierCaps
		if err := json.Unmarshal([]byte(value), &caps); err != nil {
			return apperr.Validation("value", fmt.Sprintf("malformed tiered limits payload: %v", err))
		}
	}

	if err := uc.configRepo.Upsert(ctx, key, value); err != nil {
		return err
	}

	logger.Info("System config updated",
		logger.String("key", key),
		logger.Int64("actor_id", actorID))

	return nil
}
