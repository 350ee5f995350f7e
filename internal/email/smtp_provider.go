package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if config.SMTPHost == "" || config.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) SendSubmissionConfirmation(to, name string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your SevakAI helper request has been received")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for completing your helper requirements on SevakAI.</p>
		<p>Our matching process has started. You will hear from us with
		shortlisted, verified helper profiles <b>within 24 hours</b>.</p>
		<p>Questions in the meantime? Call us at +91 98765 43210 or reach out
		on WhatsApp.</p>
		<p>— Team SevakAI</p>`, name))

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", to, err)
	}
	return nil
}
