package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// logMailer writes account emails to the log instead of sending them.
type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only logs messages.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	logger.FromContext(ctx).Info().
		Str("func", "*logMailer.Send").
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("mail queued")
	return nil
}
