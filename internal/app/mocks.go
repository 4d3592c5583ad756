package app

import (
	"taskbridge_backend/internal/email"
	"taskbridge_backend/internal/logger"
)

// logEmailProvider пишет письма в лог вместо отправки.
// Используется в dev-окружении, когда SMTP не настроен.
type logEmailProvider struct{}

func (p *logEmailProvider) Send(to []string, subject, htmlBody string) error {
	logger.Info("[email] send", "to", to, "subject", subject)
	return nil
}

func (p *logEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	logger.Info("[email] send template", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *logEmailProvider) SendPasswordReset(to string, resetLink string) error {
	logger.Info("[email] password reset", "to", to, "link", resetLink)
	return nil
}
