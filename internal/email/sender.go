package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailSender реализует Provider поверх gomail/SMTP.
type GomailSender struct {
	config    *SMTPConfig
	dialer    *gomail.Dialer
	templates *TemplateManager
}

// NewGomailSender создает новый SMTP отправитель
func NewGomailSender(config *SMTPConfig) (*GomailSender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm := NewTemplateManager()
	if err := tm.LoadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load default templates: %w", err)
	}

	return &GomailSender{
		config:    config,
		dialer:    gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		templates: tm,
	}, nil
}

// Send отправляет email сообщение
func (s *GomailSender) Send(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := s.config.FromEmail
	if s.config.FromName != "" {
		from = m.FormatAddress(s.config.FromEmail, s.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendTemplate отправляет email используя шаблон
func (s *GomailSender) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return s.Send(to, subject, htmlBody)
}

// SendPasswordReset отправляет письмо со ссылкой для сброса пароля
func (s *GomailSender) SendPasswordReset(to string, resetLink string) error {
	return s.SendTemplate([]string{to}, "Password Reset", "password_reset", TemplateData{
		"ResetURL": resetLink,
	})
}
