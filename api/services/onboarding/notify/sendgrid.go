package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
}

func NewSendGridSender(apiKey, fromName, fromAddress string) SendGridSender {
	return SendGridSender{
		client:      sendgrid.NewSendClient(apiKey),
		fromName:    fromName,
		fromAddress: fromAddress,
	}
}

func (s SendGridSender) SendEmail(to, subject, htmlBody string) error {
	from := mail.NewEmail(s.fromName, s.fromAddress)
	recipient := mail.NewEmail(to, to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
