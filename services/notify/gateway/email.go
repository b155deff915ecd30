package gateway

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/logger"
)

// LogEmailGW is an email transport that only logs. Stands in for a real
// provider in environments without SMTP credentials.
// TODO: add an SMTP-backed implementation once provider credentials land.
type LogEmailGW struct{}

// NewLogEmailGW creates the logging email gateway
func NewLogEmailGW() *LogEmailGW {
	return &LogEmailGW{}
}

// SendEmail logs the outbound message instead of delivering it.
func (g *LogEmailGW) SendEmail(_ context.Context, to, subject, body string) error {
	logger.Info("Email dispatched",
		logger.String("to", to),
		logger.String("subject", subject),
		logger.Int("body_bytes", len(body)))
	return nil
}
