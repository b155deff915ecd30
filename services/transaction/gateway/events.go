package gateway

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
	natspkg "github.com/kdarko/sikaflow/internal/pkg/nats"
)

// EventGW publishes transaction lifecycle events on the outbound NATS bus.
type EventGW struct {
	client *natspkg.Client
}

// NewEventGW creates a transaction event gateway
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{client: client}
}

// StatusOverridden publishes an admin status override for the notify consumers.
func (g *EventGW) StatusOverridden(_ context.Context, event models.TransactionEvent) error {
	return g.client.PublishJSON(models.SubjectStatusOverridden, event)
}
