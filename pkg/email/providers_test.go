package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixtyseconds/showcase/pkg/email"
)

func TestSendGridProvider_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, email.NewSendGridProvider(email.Config{}).Configured())
	assert.True(t, email.NewSendGridProvider(email.Config{SendGridAPIKey: "SG.key"}).Configured())
}

func TestSMTPProvider_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, email.NewSMTPProvider(email.Config{}).Configured())
	assert.False(t, email.NewSMTPProvider(email.Config{SMTPHost: "smtp.example.com"}).Configured())
	assert.True(t, email.NewSMTPProvider(email.Config{
		SMTPHost: "smtp.example.com",
		SMTPUser: "mailer",
		SMTPPass: "secret",
		SMTPPort: 587,
	}).Configured())
}
