package email

import (
	"testing"

	"go-transfer-backend/config"
	"go-transfer-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func TestServiceConfiguration(t *testing.T) {
	t.Run("Complete settings build a transport", func(t *testing.T) {
		s := NewService(&config.Config{
			SMTPHost:     "smtp.example.com",
			SMTPPort:     587,
			SMTPUser:     "mailer",
			SMTPPassword: "secret",
			SMTPFrom:     "noreply@example.com",
		})
		assert.True(t, s.IsConfigured())
	})

	t.Run("Any missing setting leaves the gateway unconfigured", func(t *testing.T) {
		for name, cfg := range map[string]*config.Config{
			"no host":     {SMTPPort: 587, SMTPUser: "u", SMTPPassword: "p"},
			"no port":     {SMTPHost: "h", SMTPUser: "u", SMTPPassword: "p"},
			"no user":     {SMTPHost: "h", SMTPPort: 587, SMTPPassword: "p"},
			"no password": {SMTPHost: "h", SMTPPort: 587, SMTPUser: "u"},
		} {
			assert.False(t, NewService(cfg).IsConfigured(), name)
		}
	})

	t.Run("Send on an unconfigured gateway reports false, never panics", func(t *testing.T) {
		s := NewService(&config.Config{})
		ok := s.Send(SendOptions{To: "admin@example.com", Subject: "x", Text: "y"})
		assert.False(t, ok)
	})
}
