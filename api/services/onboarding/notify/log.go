package notify

import "log/slog"

// LogSender logs instead of sending. Used when no mail provider is
// configured, so dry runs still show which customer would get which link.
type LogSender struct{}

func (LogSender) SendEmail(to, subject, htmlBody string) error {
	slog.Info("email delivery not configured, logging instead", "to", to, "subject", subject)
	return nil
}
