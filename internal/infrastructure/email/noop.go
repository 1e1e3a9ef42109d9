package email

import (
	"supportal/internal/shared/logger"
)

// NoopMailer logs every notification instead of sending it. It is wired in
// when no SMTP endpoint is configured so the rest of the service behaves
// identically with and without email delivery.
type NoopMailer struct {
	log logger.Interface
}

func NewNoopMailer(log logger.Interface) *NoopMailer {
	return &NoopMailer{log: log.Named("noop-mailer")}
}

func (n *NoopMailer) SendNewRequestNotification(clientName, requestType, description string, imageCount int) error {
	n.log.Infow("skipping new request notification, email not configured",
		"client_name", clientName,
		"request_type", requestType,
		"image_count", imageCount)
	return nil
}

func (n *NoopMailer) SendClientReplyNotification(clientName, requestType, status, content string) error {
	n.log.Infow("skipping client reply notification, email not configured",
		"client_name", clientName,
		"request_type", requestType,
		"status", status)
	return nil
}

func (n *NoopMailer) SendClientNoteNotification(clientEmail, clientName, requestType, note, portalURL string) error {
	n.log.Infow("skipping client note notification, email not configured",
		"client_email", clientEmail,
		"request_type", requestType)
	return nil
}

func (n *NoopMailer) SendClientStatusNotification(clientEmail, clientName, requestType, oldStatus, newStatus, portalURL string) error {
	n.log.Infow("skipping status notification, email not configured",
		"client_email", clientEmail,
		"old_status", oldStatus,
		"new_status", newStatus)
	return nil
}
