package gateway

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
	natspkg "github.com/kdarko/sikaflow/internal/pkg/nats"
)

// EventGW publishes vendor lifecycle events on the outbound NATS bus.
type EventGW struct {
	client *natspkg.Client
}

// NewEventGW creates a vendor event gateway
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{client: client}
}

// TransactionAccepted publishes a successful claim for the notify consumers.
func (g *EventGW) TransactionAccepted(_ context.Context, event models.TransactionEvent) error {
	return g.client.PublishJSON(models.SubjectTransactionAccepted, event)
}

// TransactionCompleted publishes a completion for the notify consumers.
func (g *EventGW) TransactionCompleted(_ context.Context, event models.TransactionEvent) error {
	return g.client.PublishJSON(models.SubjectTransactionCompleted, event)
}
