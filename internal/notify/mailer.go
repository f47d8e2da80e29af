package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/repository"
)

var submissionTmpl = template.Must(template.New("submission").Parse(
	`Hello {{.Name}},

We have received your warranty claim for order {{.OrderNumber}} ({{.Brand}}).
Your case id is {{.ClaimID}}.

You can check the status of your case at any time using your order number and
email address. We will also email you whenever the status changes.

Kind regards,
Customer Care
`))

var statusUpdateTmpl = template.Must(template.New("status_update").Parse(
	`Hello {{.Name}},

The status of your warranty claim for order {{.OrderNumber}} has changed to:
{{.Status}}.

Case id: {{.ClaimID}}

Kind regards,
Customer Care
`))

// Mailer renders notification emails and delivers them over SMTP. With no host
// configured it logs the rendered mail instead, which is what local
// development runs on.
type Mailer struct {
	host   string
	port   string
	from   string
	logger *zap.Logger
}

func NewMailer(host, port, from string, logger *zap.Logger) *Mailer {
	return &Mailer{host: host, port: port, from: from, logger: logger}
}

func (m *Mailer) Send(payload repository.NotificationPayload) error {
	subject, body, err := render(payload)
	if err != nil {
		return err
	}

	if m.host == "" {
		m.logger.Info("SMTP not configured, logging notification instead",
			zap.String("to", payload.Recipient),
			zap.String("subject", subject),
			zap.String("body", body))
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + payload.Recipient,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, nil, m.from, []string{payload.Recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", payload.Recipient, err)
	}
	return nil
}

func render(payload repository.NotificationPayload) (subject, body string, err error) {
	var (
		tmpl *template.Template
		sb   strings.Builder
	)

	switch payload.Kind {
	case repository.NotificationClaimSubmitted:
		subject = fmt.Sprintf("We received your warranty claim for order %s", payload.OrderNumber)
		tmpl = submissionTmpl
	case repository.NotificationClaimStatusUpdated:
		subject = fmt.Sprintf("Your warranty claim for order %s was updated", payload.OrderNumber)
		tmpl = statusUpdateTmpl
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", payload.Kind)
	}

	if err := tmpl.Execute(&sb, payload); err != nil {
		return "", "", fmt.Errorf("failed to render %s template: %w", payload.Kind, err)
	}
	return subject, sb.String(), nil
}
