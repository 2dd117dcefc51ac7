package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" || c.Port == 0 {
		return fmt.Errorf("smtp host and port are required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from_email is required")
	}
	return nil
}

// SMTPProvider sends mail through gomail. A fresh dial per message keeps
// the provider stateless; volume is low (account lifecycle mail only).
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, name, role string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nWelcome to SeniorWork! Your %s account was created and is awaiting review.\n"+
			"We will notify you as soon as an administrator has approved it.\n\nThe SeniorWork team",
		name, role,
	)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to SeniorWork",
		Body:    body,
	})
}

func (p *SMTPProvider) SendAccountDecision(to, name string, approved bool) error {
	var subject, body string
	if approved {
		subject = "Your SeniorWork account was approved"
		body = fmt.Sprintf("Hello %s,\n\nYour account has been approved. You can now use all features of the platform.\n\nThe SeniorWork team", name)
	} else {
		subject = "Your SeniorWork account was not approved"
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately your account was not approved. Reply to this email if you believe this is a mistake.\n\nThe SeniorWork team", name)
	}
	return p.Send(&Email{
		To:      []string{to},
		Subject: subject,
		Body:    body,
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}
