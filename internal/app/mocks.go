package app

import (
	"seniorwork_backend/internal/email"
	"seniorwork_backend/internal/logger"
)

// NoopEmailProvider logs instead of sending. Used when SMTP is not
// configured and by the integration tests.
type NoopEmailProvider struct{}

func NewNoopEmailProvider() *NoopEmailProvider {
	return &NoopEmailProvider{}
}

func (p *NoopEmailProvider) Send(e *email.Email) error {
	logger.Debug("email suppressed", "to", e.To, "subject", e.Subject)
	return nil
}

func (p *NoopEmailProvider) SendWelcome(to, name, role string) error {
	logger.Debug("welcome email suppressed", "to", to, "role", role)
	return nil
}

func (p *NoopEmailProvider) SendAccountDecision(to, name string, approved bool) error {
	logger.Debug("account decision email suppressed", "to", to, "approved", approved)
	return nil
}

func (p *NoopEmailProvider) Close() error { return nil }
