package email

import (
	"context"
	"errors"

	gomail "github.com/wneessen/go-mail"
)

// smtpProvider delivers mail over authenticated SMTP using go-mail.
type smtpProvider struct {
	host string
	port int
	user string
	pass string
}

// NewSMTPProvider returns the SMTP-backed provider. The provider is
// unconfigured unless host, user, and password are all present.
func NewSMTPProvider(cfg Config) Provider {
	return &smtpProvider{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
	}
}

func (p *smtpProvider) Name() string { return "SMTP" }

func (p *smtpProvider) Configured() bool {
	return p.host != "" && p.user != "" && p.pass != ""
}

func (p *smtpProvider) Send(ctx context.Context, req SendRequest) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(req.FromName, p.user); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if err := msg.To(req.To...); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if req.From != "" {
		if err := msg.ReplyTo(req.From); err != nil {
			return errors.Join(ErrSendFailed, err)
		}
	}
	msg.Subject(req.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, req.Body)
	msg.AddAlternativeString(gomail.TypeTextHTML, req.HTMLBody())

	client, err := gomail.NewClient(p.host,
		gomail.WithPort(p.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(p.user),
		gomail.WithPassword(p.pass),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
