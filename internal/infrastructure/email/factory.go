package email

import (
	"supportal/internal/application/support/usecases"
	"supportal/internal/shared/config"
	"supportal/internal/shared/logger"
)

// NewMailer selects the SMTP mailer when an endpoint is configured and the
// logged no-op otherwise.
func NewMailer(cfg *config.EmailConfig, log logger.Interface) usecases.Mailer {
	if !cfg.IsConfigured() {
		log.Warn("smtp not configured, notifications will be logged only")
		return NewNoopMailer(log)
	}

	return NewSMTPMailer(SMTPConfig{
		Host:                cfg.SMTPHost,
		Port:                cfg.SMTPPort,
		Username:            cfg.SMTPUser,
		Password:            cfg.SMTPPassword,
		FromAddress:         cfg.FromAddress,
		FromName:            cfg.FromName,
		NotificationAddress: cfg.NotificationAddress,
	})
}
