package email

import "context"

// Provider is one third-party email integration. Implementations report
// whether their credentials are present and perform a single send.
type Provider interface {
	// Name identifies the provider in results and logs.
	Name() string
	// Configured reports whether all required credentials are present.
	Configured() bool
	// Send delivers the message. Called only when Configured is true.
	Send(ctx context.Context, req SendRequest) error
}
