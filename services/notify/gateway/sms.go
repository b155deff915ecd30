package gateway

import (
	"context"

	"github.com/kdarko/sikaflow/internal/pkg/httpclient"
	"github.com/kdarko/sikaflow/internal/pkg/models"
)

// SMSGW sends text messages through an external HTTP SMS gateway.
type SMSGW struct {
	client   *httpclient.Client
	senderID string
}

// NewSMSGW creates an SMS gateway
func NewSMSGW(client *httpclient.Client, cfg models.SMSConfig) *SMSGW {
	return &SMSGW{client: client, senderID: cfg.SenderID}
}

type smsRequest struct {
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendSMS delivers one message. Callers treat failures as best-effort.
func (g *SMSGW) SendSMS(ctx context.Context, phone, body string) error {
	return g.client.PostJSON(ctx, "/messages", smsRequest{
		Sender:  g.senderID,
		To:      phone,
		Message: body,
	})
}
