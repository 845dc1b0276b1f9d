package email

// Config holds per-provider credentials. Every field is optional: presence
// of a provider's full credential set makes that provider eligible, and the
// dispatcher picks the first eligible provider in priority order.
type Config struct {
	// EmailJS (priority 1)
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSUserID     string `env:"EMAILJS_USER_ID"`

	// SendGrid (priority 2)
	SendGridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `env:"SENDGRID_FROM_EMAIL"`

	// SMTP (priority 3)
	SMTPHost string `env:"SMTP_HOST"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`

	// DevDir enables the development sender: messages are written to this
	// directory instead of being sent.
	DevDir string `env:"EMAIL_DEV_DIR"`
}
