package report

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Sender delivers a rendered report to a list of recipients.
type Sender interface {
	Send(to []string, subject, htmlBody string) error
}

// Mailer sends the report over SMTP. Host, port and sender come from
// the pipeline configuration; credentials from the environment.
type Mailer struct {
	host     string
	port     int
	from     string
	user     string
	password string
}

func NewMailer(host string, port int, from, user, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		user:     user,
		password: password,
	}
}

// Send mails the HTML report. Authentication is used only when
// credentials are configured.
func (m *Mailer) Send(to []string, subject, htmlBody string) error {
	if m.host == "" {
		return fmt.Errorf("mail host not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
