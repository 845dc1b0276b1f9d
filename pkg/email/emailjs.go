package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// emailJSProvider posts one JSON envelope per message to the EmailJS API.
type emailJSProvider struct {
	serviceID  string
	templateID string
	userID     string
	endpoint   string
	client     *http.Client
}

// EmailJSOption overrides transport details, mainly for tests.
type EmailJSOption func(*emailJSProvider)

// WithEmailJSEndpoint points the provider at a different send endpoint.
func WithEmailJSEndpoint(url string) EmailJSOption {
	return func(p *emailJSProvider) {
		if url != "" {
			p.endpoint = url
		}
	}
}

// WithEmailJSHTTPClient sets a custom HTTP client.
func WithEmailJSHTTPClient(c *http.Client) EmailJSOption {
	return func(p *emailJSProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// NewEmailJSProvider returns the EmailJS-backed provider. The provider is
// unconfigured unless all three ids are present.
func NewEmailJSProvider(cfg Config, opts ...EmailJSOption) Provider {
	p := &emailJSProvider{
		serviceID:  cfg.EmailJSServiceID,
		templateID: cfg.EmailJSTemplateID,
		userID:     cfg.EmailJSUserID,
		endpoint:   DefaultEmailJSEndpoint,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *emailJSProvider) Name() string { return "EmailJS" }

func (p *emailJSProvider) Configured() bool {
	return p.serviceID != "" && p.templateID != "" && p.userID != ""
}

// emailJSPayload is the fixed envelope the EmailJS send API expects.
type emailJSPayload struct {
	ServiceID      string        `json:"service_id"`
	TemplateID     string        `json:"template_id"`
	UserID         string        `json:"user_id"`
	TemplateParams emailJSParams `json:"template_params"`
}

type emailJSParams struct {
	ToEmail   string `json:"to_email"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (p *emailJSProvider) Send(ctx context.Context, req SendRequest) error {
	payload := emailJSPayload{
		ServiceID:  p.serviceID,
		TemplateID: p.templateID,
		UserID:     p.userID,
		TemplateParams: emailJSParams{
			ToEmail:   req.JoinedTo(),
			FromName:  req.FromName,
			FromEmail: req.From,
			Subject:   req.Subject,
			Message:   req.Body,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode emailjs payload: %w", ErrSendFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build emailjs request: %w", ErrSendFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: emailjs request: %w", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	// A non-2xx answer is a refusal, not a transport failure: the chain
	// moves on to the next provider.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: emailjs responded %d: %s", ErrDeclined, resp.StatusCode, bytes.TrimSpace(snippet))
	}
	return nil
}
