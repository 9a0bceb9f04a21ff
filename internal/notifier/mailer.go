package notifier

import (
	"fmt"

	"foodies-api/internal/pkg/config"
	"foodies-api/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the two reservation-lifecycle mails. Implementations
// block until the message is handed to the relay.
type Mailer interface {
	SendReservationConfirmation(payload ReservationPayload) error
	SendReviewRequest(payload ReservationPayload) error
}

type smtpMailer struct {
	dialer            *gomail.Dialer
	from              string
	reviewPageBaseURL string
}

func NewSMTPMailer(smtp config.SMTPConfig, notify config.NotifyConfig) Mailer {
	return &smtpMailer{
		dialer:            gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password),
		from:              smtp.From,
		reviewPageBaseURL: notify.ReviewPageBaseURL,
	}
}

func (m *smtpMailer) SendReservationConfirmation(p ReservationPayload) error {
	subject := fmt.Sprintf("Reservation confirmed at %s", p.RestaurantName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your reservation at <b>%s</b> is booked.</p>"+
			"<ul>"+
			"<li>Date: %s</li>"+
			"<li>Table: %s</li>"+
			"<li>Party size: %d</li>"+
			"</ul>"+
			"<p>See you soon!</p>",
		p.UserName,
		p.RestaurantName,
		p.ReservedAt.Format("Monday, 2 January 2006 at 15:04"),
		p.TableID,
		p.PartySize,
	)
	return m.send(p.UserEmail, subject, body)
}

func (m *smtpMailer) SendReviewRequest(p ReservationPayload) error {
	reviewURL := fmt.Sprintf("%s/restaurants/%s/reviews/new?reservation=%s",
		m.reviewPageBaseURL, p.RestaurantID, p.ReservationID)

	subject := fmt.Sprintf("How was your visit to %s?", p.RestaurantName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Thanks for dining at <b>%s</b>. We would love to hear how it went.</p>"+
			"<p><a href=\"%s\">Leave a review</a></p>",
		p.UserName,
		p.RestaurantName,
		reviewURL,
	)
	return m.send(p.UserEmail, subject, body)
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}
