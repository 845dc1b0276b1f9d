package email

import (
	"fmt"
	"strings"
)

// SendRequest is one normalized contact-form message.
type SendRequest struct {
	To       []string `json:"to"`       // Recipient addresses, at least one
	Subject  string   `json:"subject"`  // Subject line
	Body     string   `json:"body"`     // Plain-text body
	From     string   `json:"from"`     // Sender address, used as reply-to
	FromName string   `json:"fromName"` // Sender display name
}

// Validate checks the request before any credential or provider is consulted.
func (r SendRequest) Validate() error {
	if len(r.To) == 0 {
		return fmt.Errorf("%w: recipient list is empty", ErrValidation)
	}
	for _, addr := range r.To {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("%w: empty recipient address", ErrValidation)
		}
	}
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("%w: subject is empty", ErrValidation)
	}
	if strings.TrimSpace(r.Body) == "" {
		return fmt.Errorf("%w: body is empty", ErrValidation)
	}
	return nil
}

// JoinedTo returns the recipient list as a single comma-separated string,
// the form the EmailJS template and SMTP header expect.
func (r SendRequest) JoinedTo() string {
	return strings.Join(r.To, ",")
}

// HTMLBody returns the plain-text body with newlines converted to <br> tags.
func (r SendRequest) HTMLBody() string {
	return strings.ReplaceAll(r.Body, "\n", "<br>")
}
