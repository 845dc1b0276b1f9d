package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtyseconds/showcase/pkg/email"
)

func TestDevProvider(t *testing.T) {
	t.Parallel()

	t.Run("configured only with a directory", func(t *testing.T) {
		t.Parallel()

		assert.False(t, email.NewDevProvider(email.Config{}).Configured())
		assert.True(t, email.NewDevProvider(email.Config{DevDir: t.TempDir()}).Configured())
	})

	t.Run("writes HTML and metadata files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := email.NewDevProvider(email.Config{DevDir: dir})

		req := email.SendRequest{
			To:       []string{"hello@sixtyseconds.video"},
			Subject:  "Pricing question",
			Body:     "How much\nfor ten seats?",
			From:     "sam@example.com",
			FromName: "Sam",
		}
		require.NoError(t, p.Send(context.Background(), req))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlPath, jsonPath string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlPath = filepath.Join(dir, e.Name())
			case ".json":
				jsonPath = filepath.Join(dir, e.Name())
			}
			assert.Contains(t, e.Name(), "Pricing_question")
		}
		require.NotEmpty(t, htmlPath)
		require.NotEmpty(t, jsonPath)

		html, err := os.ReadFile(htmlPath)
		require.NoError(t, err)
		assert.Equal(t, "How much<br>for ten seats?", string(html))

		var meta struct {
			To       []string `json:"to"`
			From     string   `json:"from"`
			FromName string   `json:"from_name"`
			Subject  string   `json:"subject"`
		}
		raw, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, req.To, meta.To)
		assert.Equal(t, "sam@example.com", meta.From)
		assert.Equal(t, "Sam", meta.FromName)
		assert.Equal(t, "Pricing question", meta.Subject)
	})

	t.Run("sanitizes the subject in filenames", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := email.NewDevProvider(email.Config{DevDir: dir})

		req := validRequest()
		req.Subject = "Urgent!!! re: pricing / demo (ASAP)"
		require.NoError(t, p.Send(context.Background(), req))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.ContainsAny(e.Name(), "!/ ()"), "unsafe filename %q", e.Name())
		}
	})
}
