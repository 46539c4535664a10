package email

import (
	"crypto/tls"
	"go-transfer-backend/config"
	"go-transfer-backend/pkg/logger"

	mail "github.com/go-mail/mail"
)

const senderName = "Royal Transfer"

// SendOptions holds everything needed for a single outgoing message.
// Text and HTML are alternative renderings of the same content.
type SendOptions struct {
	To      string
	Subject string
	Text    string
	HTML    string
	ReplyTo string
}

// Service sends notification emails over SMTP. It is constructed once at
// startup; when required transport settings are missing it stays permanently
// unconfigured and every Send call reports false.
type Service struct {
	dialer *mail.Dialer
	from   string
}

func NewService(cfg *config.Config) *Service {
	s := &Service{from: cfg.SMTPFrom}

	if cfg.SMTPHost == "" || cfg.SMTPPort == 0 || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		return s
	}

	d := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	d.SSL = cfg.SMTPSecure
	d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost}
	s.dialer = d
	return s
}

// IsConfigured reports whether a transport was constructed at startup.
func (s *Service) IsConfigured() bool {
	return s.dialer != nil
}

// Send makes a single synchronous delivery attempt and reports whether it
// succeeded. Failures are logged and never propagate past this boundary;
// there is no retry or queueing.
func (s *Service) Send(opts SendOptions) bool {
	if s.dialer == nil {
		logger.Log.Error("email send skipped: transport not initialized", "to", opts.To)
		return false
	}

	m := mail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, senderName))
	m.SetHeader("To", opts.To)
	m.SetHeader("Subject", opts.Subject)
	if opts.ReplyTo != "" {
		m.SetHeader("Reply-To", opts.ReplyTo)
	}

	// multipart/alternative: plain text plus HTML
	m.SetBody("text/plain", opts.Text)
	if opts.HTML != "" {
		m.AddAlternative("text/html", opts.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.Log.Error("email send failed", "to", opts.To, "subject", opts.Subject, "error", err)
		return false
	}

	logger.Log.Info("email sent", "to", opts.To, "subject", opts.Subject)
	return true
}
