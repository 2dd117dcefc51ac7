package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends transactional email. All sends are best effort: a failed
// email never fails the triggering request.
type Provider interface {
	Send(email *Email) error
	SendWelcome(to, name, role string) error
	SendAccountDecision(to, name string, approved bool) error
	Close() error
}
