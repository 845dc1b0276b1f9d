package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// devProvider saves messages to disk for local development instead of
// calling an email service.
type devProvider struct {
	dir string
}

// NewDevProvider returns a provider that writes each message as an HTML
// file plus a JSON metadata file under dir. The provider is unconfigured
// unless dir is set.
func NewDevProvider(cfg Config) Provider {
	return &devProvider{dir: cfg.DevDir}
}

func (p *devProvider) Name() string { return "dev" }

func (p *devProvider) Configured() bool { return p.dir != "" }

// devMetadata is the message data saved to JSON alongside the HTML body.
type devMetadata struct {
	Timestamp string   `json:"timestamp"`
	To        []string `json:"to"`
	From      string   `json:"from,omitempty"`
	FromName  string   `json:"from_name,omitempty"`
	Subject   string   `json:"subject"`
}

func (p *devProvider) Send(ctx context.Context, req SendRequest) error {
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return fmt.Errorf("%w: create dev email directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(req.Subject))

	htmlPath := filepath.Join(p.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(req.HTMLBody()), 0644); err != nil {
		return fmt.Errorf("%w: write HTML file: %v", ErrSendFailed, err)
	}

	metadata := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        req.To,
		From:      req.From,
		FromName:  req.FromName,
		Subject:   req.Subject,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
	}
	jsonPath := filepath.Join(p.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: write JSON file: %v", ErrSendFailed, err)
	}

	return nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")
	if len(s) > 50 {
		s = s[:50]
	}
	if s == "" {
		s = "email"
	}
	return s
}
