package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"hallmate/internal/db"
	"hallmate/internal/entities"
)

const bookingStatusEmailTemplate = `
<p>Dear {{.Name}},</p>
<p>Your booking for <strong>{{.HallName}}</strong> on <strong>{{.BookingDate}}</strong>
from <strong>{{.StartTime}}</strong> to <strong>{{.EndTime}}</strong> has been
<strong>{{.Status}}</strong>.</p>
<p><strong>Booking ID:</strong> {{.BookingID}}</p>
<p><strong>Event:</strong> {{.EventName}}</p>
<p>Thank you.</p>
<p>HallMate, {{.CurrentYear}}.</p>
`

var bookingStatusTmpl = template.Must(template.New("booking_status").Parse(bookingStatusEmailTemplate))

// SenderService composes and dispatches booking status notifications.
type SenderService struct {
	mailer Mailer
	sms    SMSSender
}

func NewSenderService(mailer Mailer, sms SMSSender) *SenderService {
	return &SenderService{mailer: mailer, sms: sms}
}

// SendBookingStatusEmail notifies the booking owner of a status decision.
// It is synchronous so the caller can report the delivery outcome; a failure
// never rolls back the transition that triggered it.
func (s *SenderService) SendBookingStatusEmail(b *db.Booking) error {
	data := entities.BookingEmailData{
		Name:        b.Name,
		HallName:    b.HallName,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		BookingTime: b.BookingTime,
		EventName:   b.EventName,
		Status:      strings.ToUpper(b.Status),
		BookingID:   b.ID,
		CurrentYear: time.Now().Year(),
	}

	subject := fmt.Sprintf("Your Booking for %s has been %s", b.HallName, data.Status)
	plainBody := fmt.Sprintf(
		"Dear %s,\n\nYour booking for %s on %s from %s to %s has been %s.\n\n"+
			"Booking ID: %d\nEvent: %s\n\nThank you.",
		b.Name, b.HallName, b.BookingDate, b.StartTime, b.EndTime, data.Status,
		b.ID, b.EventName,
	)

	var htmlBody bytes.Buffer
	if err := bookingStatusTmpl.Execute(&htmlBody, data); err != nil {
		log.Printf("Error executing booking status email template for booking %d: %v", b.ID, err)
	}

	if err := s.mailer.Send(b.UserEmail, b.Name, subject, plainBody, htmlBody.String()); err != nil {
		log.Printf("Booking %d status updated, but the notification email to %s failed: %v", b.ID, b.UserEmail, err)
		return err
	}
	return nil
}

// SendBookingStatusSMS fires off an SMS to the contact number on the booking,
// without waiting for or reporting the result.
func (s *SenderService) SendBookingStatusSMS(b *db.Booking) {
	if b.PhoneNumber == "" {
		return
	}

	message := fmt.Sprintf("HallMate: your booking for %s on %s (%s-%s) has been %s. Details in your email.",
		b.HallName, b.BookingDate, b.StartTime, b.EndTime, strings.ToUpper(b.Status))

	go func(toNumber, body string, bookingID int) {
		if err := s.sms.Send(toNumber, body); err != nil {
			log.Printf("Booking %d status SMS to %s failed: %v", bookingID, toNumber, err)
		}
	}(b.PhoneNumber, message, b.ID)
}

// SendPasswordResetEmail mails a reset token to the account owner.
func (s *SenderService) SendPasswordResetEmail(toEmail, toName, token string, expiresAt time.Time) error {
	subject := "HallMate password reset"
	plainBody := fmt.Sprintf(
		"Hello %s,\n\nWe received a request to reset your HallMate password.\n\n"+
			"Reset token: %s\n\nThe token expires at %s and can be used once.\n\n"+
			"If you did not request this, you can ignore this email.",
		toName, token, expiresAt.UTC().Format("02 Jan 2006 15:04 MST"),
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>We received a request to reset your HallMate password.</p>"+
			"<p><strong>Reset token:</strong> %s</p>"+
			"<p>The token expires at %s and can be used once.</p>"+
			"<p>If you did not request this, you can ignore this email.</p>",
		template.HTMLEscapeString(toName), token, expiresAt.UTC().Format("02 Jan 2006 15:04 MST"),
	)

	if err := s.mailer.Send(toEmail, toName, subject, plainBody, htmlBody); err != nil {
		log.Printf("Password reset email to %s failed: %v", toEmail, err)
		return err
	}
	return nil
}
