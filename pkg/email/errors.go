package email

import "errors"

var (
	// ErrValidation marks a malformed send request. No provider is attempted.
	ErrValidation = errors.New("invalid email request")

	// ErrNotConfigured is returned when no provider has credentials.
	ErrNotConfigured = errors.New("no email service configured: please configure EmailJS, SendGrid, or SMTP credentials")

	// ErrSendFailed marks a configured provider whose send failed. The
	// dispatcher does not fall through to the next provider on send failure.
	ErrSendFailed = errors.New("failed to send email")

	// ErrDeclined marks a provider that answered but refused the message.
	// Unlike ErrSendFailed the dispatcher treats this as non-terminal and
	// advances to the next configured provider.
	ErrDeclined = errors.New("email provider declined the message")
)
