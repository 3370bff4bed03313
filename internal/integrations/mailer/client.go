package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
)

// Client клиент для отправки писем через SendGrid
type Client struct {
	apiKey        string
	fromEmail     string
	fromName      string
	operatorEmail string
	log           Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(apiKey, fromEmail, fromName, operatorEmail string, log Logger) *Client {
	return &Client{
		apiKey:        apiKey,
		fromEmail:     fromEmail,
		fromName:      fromName,
		operatorEmail: operatorEmail,
		log:           log,
	}
}

// SendCustomerConfirmation отправляет клиенту подтверждение бронирования
func (c *Client) SendCustomerConfirmation(booking *domain.Booking) error {
	subject := fmt.Sprintf("Your Booking Confirmation #%s - Caribe Azul", booking.ID)

	html, err := renderCustomerConfirmation(booking)
	if err != nil {
		return fmt.Errorf("%w: customer confirmation: %v", ErrRenderTemplate, err)
	}

	plain := fmt.Sprintf(
		"Your booking %s is confirmed.\n%s at %s, pickup: %s.\nTotal: $%.2f.\nHave your booking ID ready for check-in.",
		booking.ID,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.Pickup,
		booking.Total,
	)

	return c.send(booking.CustomerName, booking.CustomerEmail, subject, plain, html)
}

// SendOperatorNotification уведомляет оператора о новом оплаченном бронировании
func (c *Client) SendOperatorNotification(booking *domain.Booking) error {
	subject := fmt.Sprintf("NEW BOOKING: %s - $%.2f", booking.ID, booking.Total)

	html, err := renderOperatorNotification(booking)
	if err != nil {
		return fmt.Errorf("%w: operator notification: %v", ErrRenderTemplate, err)
	}

	plain := fmt.Sprintf(
		"New paid booking %s.\n%s at %s, pickup: %s.\nCustomer: %s (%s).\nTotal: $%.2f.",
		booking.ID,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.Pickup,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.Total,
	)

	return c.send("Operations", c.operatorEmail, subject, plain, html)
}

func (c *Client) send(toName, toEmail, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		c.log.Error("Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, toEmail, err)
	}

	if response.StatusCode >= 400 {
		c.log.Error("SendGrid rejected email to %s: status %d, body %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("%w: to=%s, status=%d", ErrSendFailed, toEmail, response.StatusCode)
	}

	c.log.Info("Email sent to %s: %s", toEmail, subject)
	return nil
}
