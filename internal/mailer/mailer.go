// Package mailer defines the outbound mail contract. Actual delivery is an
// external collaborator; the default implementation only logs.
package mailer

import (
	"context"

	"github.com/trabajitos-sv/trabajitos-api/internal/logger"
)

// Mailer sends a single message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes outbound mail to the service log instead of delivering
// it. Used in development and tests.
type LogMailer struct{}

// NewLogMailer creates a mailer that only logs.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send implements Mailer.
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	logger.InfoWithFields("outbound mail", map[string]interface{}{
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	return nil
}
