package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	smail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// defaultFromEmail is used when SENDGRID_FROM_EMAIL is not set.
const defaultFromEmail = "noreply@sixtyseconds.video"

type sendGridProvider struct {
	apiKey    string
	fromEmail string
}

// NewSendGridProvider returns the SendGrid-backed provider. The provider is
// unconfigured unless an API key is present.
func NewSendGridProvider(cfg Config) Provider {
	from := cfg.SendGridFromEmail
	if from == "" {
		from = defaultFromEmail
	}
	return &sendGridProvider{
		apiKey:    cfg.SendGridAPIKey,
		fromEmail: from,
	}
}

func (p *sendGridProvider) Name() string { return "SendGrid" }

func (p *sendGridProvider) Configured() bool { return p.apiKey != "" }

func (p *sendGridProvider) Send(ctx context.Context, req SendRequest) error {
	m := smail.NewV3Mail()
	m.SetFrom(smail.NewEmail(req.FromName, p.fromEmail))
	m.Subject = req.Subject

	pers := smail.NewPersonalization()
	for _, to := range req.To {
		pers.AddTos(smail.NewEmail("", to))
	}
	m.AddPersonalizations(pers)

	m.AddContent(smail.NewContent("text/plain", req.Body))
	m.AddContent(smail.NewContent("text/html", req.HTMLBody()))
	if req.From != "" {
		m.SetReplyTo(smail.NewEmail(req.FromName, req.From))
	}

	resp, err := sendgrid.NewSendClient(p.apiKey).SendWithContext(ctx, m)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.StatusCode >= 400 {
		body := resp.Body
		if len(body) > 512 {
			body = body[:512]
		}
		return fmt.Errorf("%w: sendgrid responded %d: %s", ErrSendFailed, resp.StatusCode, strings.TrimSpace(body))
	}
	return nil
}
