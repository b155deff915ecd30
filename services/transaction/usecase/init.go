package usecase

import (
	"github.com/kdarko/sikaflow/internal/pkg/models"
	"github.com/kdarko/sikaflow/services/transaction"
)

// TransactionUC implements the transaction use case interface
type TransactionUC struct {
	cfg        *models.Config
	txRepo     transaction.TransactionRepo
	configRepo transaction.ConfigRepo
	users      transaction.UserReader
	rates      transaction.RateQuoter
	eventGW    transaction.EventPublisher
	limits     *LimitEvaluator
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	txRepo transaction.TransactionRepo,
	configRepo transaction.ConfigRepo,
	users transaction.UserReader,
	rates transaction.RateQuoter,
	eventGW transaction.EventPublisher,
) *TransactionUC {
	return &TransactionUC{
		cfg:        cfg,
		txRepo:     txRepo,
		configRepo: configRepo,
		users:      users,
		rates:      rates,
		eventGW:    eventGW,
		limits:     NewLimitEvaluator(cfg, txRepo, configRepo),
	}
}
