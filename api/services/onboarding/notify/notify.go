package notify

// Sender delivers the checkout email. Sending is best-effort from the
// workflow's point of view: a failure fails the record it belongs to but
// never the run.
type Sender interface {
	SendEmail(to, subject, htmlBody string) error
}
