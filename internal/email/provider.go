package email

import (
	"github.com/tejaIG/sevak-ai-poc/internal/logger"
)

// Provider sends transactional mail. The SMTP implementation is used when
// credentials are configured; the mock logs and succeeds so that submission
// never fails because of mail delivery.
type Provider interface {
	SendSubmissionConfirmation(to, name string) error
}

// MockProvider logs instead of sending. Used in development and tests.
type MockProvider struct{}

func (MockProvider) SendSubmissionConfirmation(to, name string) error {
	logger.Info("mock email: submission confirmation", "to", to, "name", name)
	return nil
}
