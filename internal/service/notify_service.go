package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Mailer delivers a single email. Delivery is best-effort: callers decide
// whether a failure matters, nothing retries.
type Mailer interface {
	Send(toEmail, toName, subject, plainBody, htmlBody string) error
}

// SMSSender delivers a single SMS, best-effort.
type SMSSender interface {
	Send(toNumber, body string) error
}

// SendGridMailer sends through the SendGrid API. Construct it once at startup
// and inject it; it holds no ambient state.
type SendGridMailer struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	if fromName == "" {
		fromName = "HallMate"
	}
	return &SendGridMailer{APIKey: apiKey, FromEmail: fromEmail, FromName: fromName}
}

func (m *SendGridMailer) Send(toEmail, toName, subject, plainBody, htmlBody string) error {
	if m.APIKey == "" || m.FromEmail == "" {
		log.Println("WARNING: SendGrid is not configured. Email will not be sent.")
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(m.FromName, m.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBody)

	client := sendgrid.NewSendClient(m.APIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s via SendGrid: %v", toEmail, err)
		return fmt.Errorf("failed to send email through SendGrid: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Email sent to %s (subject: %s). Status: %d", toEmail, subject, response.StatusCode)
		return nil
	}

	log.Printf("Error sending email to %s via SendGrid. Status: %d, body: %s", toEmail, response.StatusCode, response.Body)
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}

// TwilioSMSSender sends through the Twilio REST API.
type TwilioSMSSender struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func NewTwilioSMSSender(accountSID, authToken, fromNumber string) *TwilioSMSSender {
	return &TwilioSMSSender{AccountSID: accountSID, AuthToken: authToken, FromNumber: fromNumber}
}

func (s *TwilioSMSSender) Send(toNumber, body string) error {
	if s.AccountSID == "" || s.AuthToken == "" || s.FromNumber == "" {
		log.Println("WARNING: Twilio credentials are not fully configured. SMS will not be sent.")
		return fmt.Errorf("twilio credentials not fully configured")
	}

	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number %q is not in E.164 format. The SMS may fail.", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   s.AccountSID,
		Password:   s.AuthToken,
		AccountSid: s.AccountSID,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.FromNumber)
	params.SetBody(body)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error sending SMS to %s via Twilio: %v", toNumber, err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s. Message SID: %s", toNumber, *resp.Sid)
	}
	return nil
}
