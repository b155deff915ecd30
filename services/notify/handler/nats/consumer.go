package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/kdarko/sikaflow/internal/pkg/logger"
	"github.com/kdarko/sikaflow/internal/pkg/models"
	natspkg "github.com/kdarko/sikaflow/internal/pkg/nats"
	"github.com/kdarko/sikaflow/services/notify"
)

// Consumer subscribes to lifecycle events and hands them to the notify use
// case. A malformed message is logged and dropped; there is no redelivery.
type Consumer struct {
	client *natspkg.Client
	uc     notify.NotifyUC
	subs   []*nats.Subscription
}

// NewConsumer creates a new notify event consumer
func NewConsumer(client *natspkg.Client, uc notify.NotifyUC) *Consumer {
	return &Consumer{client: client, uc: uc}
}

// Start subscribes to all notify subjects.
func (c *Consumer) Start(ctx context.Context) error {
	transactionSubjects := map[string]func(context.Context, models.TransactionEvent){
		models.SubjectTransactionAccepted:  c.uc.HandleTransactionAccepted,
		models.SubjectTransactionCompleted: c.uc.HandleTransactionCompleted,
		models.SubjectStatusOverridden:     c.uc.HandleStatusOverridden,
	}

	for subject, handle := range transactionSubjects {
		handle := handle
		sub, err := c.client.Subscribe(subject, func(msg *nats.Msg) {
			var event models.TransactionEvent
			if err := json.Unmarshal(msg.Data, &event); err != nil {
				logger.Error("Failed to decode transaction event",
					logger.String("subject", msg.Subject),
					logger.Err(err))
				return
			}
			handle(ctx, event)
		})
		if err != nil {
			return err
		}
		c.subs = append(c.subs, sub)
	}

	sub, err := c.client.Subscribe(models.SubjectRateAlertTriggered, func(msg *nats.Msg) {
		var event models.RateAlertEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Error("Failed to decode rate-alert event", logger.Err(err))
			return
		}
		c.uc.HandleRateAlertTriggered(ctx, event)
	})
	if err != nil {
		return err
	}
	c.subs = append(c.subs, sub)

	logger.Info("Notify consumer started", logger.Int("subscriptions", len(c.subs)))
	return nil
}

// Stop drains all subscriptions.
func (c *Consumer) Stop() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	c.subs = nil
}
