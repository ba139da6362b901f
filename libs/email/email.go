// Package email sends transactional mail over SMTP with embedded HTML
// templates. Sends are best-effort from the callers' perspective;
// failures are returned so the caller can decide to log or surface.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/noterepo/noterepo/config"
	"github.com/noterepo/noterepo/pkg/links"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var embedTemplates embed.FS

var (
	defaultDialer *gomail.Dialer
	templates     *template.Template
)

// Init parses the mail templates and configures the SMTP dialer.
func Init(l *zap.Logger) error {
	t, err := template.ParseFS(embedTemplates, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse mail templates: %w", err)
	}
	templates = t

	defaultDialer = gomail.NewDialer(
		config.Email.SMTPHost(),
		config.Email.SMTPPort(),
		config.Email.Username(),
		config.Email.Password(),
	)

	l.Info("mailer initialized", zap.String("host", config.Email.SMTPHost()))
	return nil
}

// SendVerificationMail mails the account verification link for a token.
func SendVerificationMail(to, token string) error {
	return send(to, "Noterepo verification link", "verify.html", map[string]string{
		"Link": links.Verify(token),
	})
}

// SendResetPasswordMail mails the reset-password link.
func SendResetPasswordMail(to, link string) error {
	return send(to, "Noterepo password reset", "reset.html", map[string]string{
		"Link": link,
	})
}

func send(to, subject, tmpl string, data any) error {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.Email.From())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := defaultDialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
