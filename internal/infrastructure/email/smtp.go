package email

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// NotificationAddress receives admin-facing mail (new requests, client replies).
	NotificationAddress string
}

// SMTPMailer delivers support notifications over SMTP. User-authored text is
// stripped of markup before it is embedded in HTML bodies; the plain-text
// alternative carries it verbatim.
type SMTPMailer struct {
	config    SMTPConfig
	dialer    *gomail.Dialer
	sanitizer *bluemonday.Policy
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		config:    config,
		dialer:    gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *SMTPMailer) SendNewRequestNotification(clientName, requestType, description string, imageCount int) error {
	subject := fmt.Sprintf("New Support Request from %s", clientName)

	attachmentLine := ""
	if imageCount > 0 {
		attachmentLine = fmt.Sprintf("<p><strong>Attachments:</strong> %d image(s)</p>", imageCount)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Support Request</h2>
			<p><strong>Client:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p><strong>Description:</strong></p>
			<p>%s</p>
			%s
		</body>
		</html>
	`, s.sanitizer.Sanitize(clientName), s.sanitizer.Sanitize(requestType), s.sanitizer.Sanitize(description), attachmentLine)

	plainBody := fmt.Sprintf(`
New Support Request

Client: %s
Type: %s

Description:
%s

Attachments: %d image(s)
	`, clientName, requestType, description, imageCount)

	return s.sendEmail(s.config.NotificationAddress, subject, htmlBody, plainBody)
}

func (s *SMTPMailer) SendClientReplyNotification(clientName, requestType, status, content string) error {
	subject := fmt.Sprintf("New Reply from %s", clientName)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Client Reply on Support Request</h2>
			<p><strong>Client:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p><strong>Current Status:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</body>
		</html>
	`, s.sanitizer.Sanitize(clientName), s.sanitizer.Sanitize(requestType), s.sanitizer.Sanitize(status), s.sanitizer.Sanitize(content))

	plainBody := fmt.Sprintf(`
Client Reply on Support Request

Client: %s
Type: %s
Current Status: %s

Message:
%s
	`, clientName, requestType, status, content)

	return s.sendEmail(s.config.NotificationAddress, subject, htmlBody, plainBody)
}

func (s *SMTPMailer) SendClientNoteNotification(clientEmail, clientName, requestType, note, portalURL string) error {
	subject := "Update on Your Support Request"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>Our support team has added an update to your <strong>%s</strong> request:</p>
			<p>%s</p>
			<p><a href="%s">View your request</a></p>
			<p>You can reply directly from the support portal.</p>
		</body>
		</html>
	`, s.sanitizer.Sanitize(clientName), s.sanitizer.Sanitize(requestType), s.sanitizer.Sanitize(note), portalURL)

	plainBody := fmt.Sprintf(`
Hi %s,

Our support team has added an update to your %s request:

%s

View your request:
%s

You can reply directly from the support portal.
	`, clientName, requestType, note, portalURL)

	return s.sendEmail(clientEmail, subject, htmlBody, plainBody)
}

func (s *SMTPMailer) SendClientStatusNotification(clientEmail, clientName, requestType, oldStatus, newStatus, portalURL string) error {
	subject := fmt.Sprintf("Your Support Request is now %s", newStatus)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>The status of your <strong>%s</strong> request has changed:</p>
			<p><strong>%s</strong> &rarr; <strong>%s</strong></p>
			<p><a href="%s">View your request</a></p>
		</body>
		</html>
	`, s.sanitizer.Sanitize(clientName), s.sanitizer.Sanitize(requestType), s.sanitizer.Sanitize(oldStatus), s.sanitizer.Sanitize(newStatus), portalURL)

	plainBody := fmt.Sprintf(`
Hi %s,

The status of your %s request has changed:

%s -> %s

View your request:
%s
	`, clientName, requestType, oldStatus, newStatus, portalURL)

	return s.sendEmail(clientEmail, subject, htmlBody, plainBody)
}

func (s *SMTPMailer) sendEmail(to, subject, htmlBody, plainBody string) error {
	if to == "" {
		return fmt.Errorf("no recipient address configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
