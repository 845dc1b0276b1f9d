// Package email forwards contact-form messages to a third-party email
// service.
//
// Three provider integrations are supported - EmailJS, SendGrid and plain
// SMTP - consulted in that fixed priority order. A provider is skipped when
// its credentials are absent, and EmailJS refusing a message with a non-2xx
// answer (ErrDeclined) also lets the chain advance. Any other failure from a
// configured provider ends the request with an error: no fallback from a
// transport or send exception, and no retry.
//
// Credentials come from the environment (see Config). When no provider is
// configured Dispatch returns ErrNotConfigured without making any network
// calls. An optional development sender writes messages to disk instead of
// sending; when enabled it is consulted before the provider chain.
package email
