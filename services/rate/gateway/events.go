package gateway

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/models"
	natspkg "github.com/kdarko/sikaflow/internal/pkg/nats"
)

// EventGW publishes rate events on the outbound NATS bus.
type EventGW struct {
	client *natspkg.Client
}

// NewEventGW creates a rate event gateway
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{client: client}
}

// RateAlertTriggered publishes a fired alert for the notify consumers.
func (g *EventGW) RateAlertTriggered(_ context.Context, event models.RateAlertEvent) error {
	return g.client.PublishJSON(models.SubjectRateAlertTriggered, event)
}
