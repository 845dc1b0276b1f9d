package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Result reports which provider delivered a message.
type Result struct {
	Provider string `json:"provider"`
	Message  string `json:"message"`
}

// Dispatcher routes each message to the first configured provider in its
// chain. Providers are tried in order; an unconfigured provider is skipped,
// a provider answering with ErrDeclined yields to the next one, and any
// other send failure is terminal.
type Dispatcher struct {
	providers []Provider
	log       *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithProviders replaces the default provider chain.
func WithProviders(providers ...Provider) Option {
	return func(d *Dispatcher) {
		d.providers = providers
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// New creates a Dispatcher with the default chain built from cfg: the dev
// sender when a dev directory is set, then EmailJS, SendGrid, and SMTP.
func New(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		providers: []Provider{
			NewDevProvider(cfg),
			NewEmailJSProvider(cfg),
			NewSendGridProvider(cfg),
			NewSMTPProvider(cfg),
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch validates req and sends it through the first configured
// provider. It returns ErrValidation for a malformed request and
// ErrNotConfigured when no provider in the chain has credentials.
func (d *Dispatcher) Dispatch(ctx context.Context, req SendRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	var declined error
	for _, p := range d.providers {
		if !p.Configured() {
			d.log.DebugContext(ctx, "email provider not configured, skipping", "provider", p.Name())
			continue
		}
		if err := p.Send(ctx, req); err != nil {
			// A refusal lets the chain advance; anything else is terminal.
			if errors.Is(err, ErrDeclined) {
				d.log.WarnContext(ctx, "email provider declined, trying next", "provider", p.Name(), "error", err)
				declined = err
				continue
			}
			d.log.ErrorContext(ctx, "email send failed", "provider", p.Name(), "error", err)
			return Result{}, err
		}
		d.log.InfoContext(ctx, "email sent", "provider", p.Name(), "recipients", len(req.To))
		return Result{
			Provider: p.Name(),
			Message:  fmt.Sprintf("Email sent successfully via %s", p.Name()),
		}, nil
	}

	if declined != nil {
		return Result{}, declined
	}
	return Result{}, ErrNotConfigured
}
