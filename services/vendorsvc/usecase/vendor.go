package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// regionPrefixes maps a vendor's country to the currency-pair prefix they
// serve. Unlisted countries see the whole pool. A routing heuristic, not a
// guaranteed regional assignment.
var regionPrefixes = map[string]string{
	"Canada": "CAD-",
	"Ghana":  "GHS-",
}

// SetAvailability toggles whether the vendor is taking work. The flag is
// written to both the user row and the Redis presence set; a presence write
// failure is logged but does not undo the row update.
func (uc *VendorUC) SetAvailability(ctx context.Context, vendorID int64, online bool) error {
	if err := uc.users.SetOnline(ctx, vendorID, online); err != nil {
		return err
	}

	if err := uc.presence.SetOnline(ctx, vendorID, online); err != nil {
		logger.Warn("Failed to update vendor presence set",
			logger.Int64("vendor_id", vendorID),
			logger.Err(err))
	}

	logger.Info("Vendor availability changed",
		logger.Int64("vendor_id", vendorID),
		logger.Bool("online", online))

	return nil
}

// Pool returns the pending unclaimed transactions visible to the vendor under
// the regional routing rule.
func (uc *VendorUC) Pool(ctx context.Context, vendorID int64) ([]*models.Transaction, error) {
	vendorUser, err := uc.users.GetByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor: %w", err)
	}

	return uc.poolRepo.AvailablePool(ctx, regionPrefixes[vendorUser.Country])
}

// Handled returns the transactions the vendor has claimed.
func (uc *VendorUC) Handled(ctx context.Context, vendorID int64) ([]*models.Transaction, error) {
	return uc.poolRepo.HandledByVendor(ctx, vendorID)
}

// Accept atomically claims a pending transaction. The claim commits first;
// the event publish afterwards is best-effort and never undoes the claim.
func (uc *VendorUC) Accept(ctx context.Context, vendorID, txID int64, ip string) (*models.Transaction, error) {
	tx, err := uc.poolRepo.Claim(ctx, txID, vendorID)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction claimed",
		logger.Int64("transaction_id", tx.ID),
		logger.Int64("vendor_id", vendorID))

	if err := uc.eventGW.TransactionAccepted(ctx, uc.buildEvent(tx, vendorID, ip)); err != nil {
		logger.Error("Failed to publish accept event",
			logger.Int64("transaction_id", tx.ID),
			logger.Err(err))
	}

	return tx, nil
}

// Complete marks the vendor's own processing transaction as sent.
func (uc *VendorUC) Complete(ctx context.Context, vendorID, txID int64, ip string) (*models.Transaction, error) {
	tx, err := uc.poolRepo.Complete(ctx, txID, vendorID)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction completed",
		logger.Int64("transaction_id", tx.ID),
		logger.Int64("vendor_id", vendorID))

	if err := uc.eventGW.TransactionCompleted(ctx, uc.buildEvent(tx, vendorID, ip)); err != nil {
		logger.Error("Failed to publish complete event",
			logger.Int64("transaction_id", tx.ID),
			logger.Err(err))
	}

	return tx, nil
}

func (uc *VendorUC) buildEvent(tx *models.Transaction, actorID int64, ip string) models.TransactionEvent {
	return models.TransactionEvent{
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
}
