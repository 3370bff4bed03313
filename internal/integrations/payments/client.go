package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Client клиент платёжного провайдера (Stripe)
// Суммы передаются в центах - провайдер работает в минимальных единицах валюты
type Client struct {
	log Logger
}

// NewClient создает новый экземпляр платёжного клиента
// Ключ выставляется глобально - так устроен SDK провайдера
func NewClient(secretKey string, log Logger) *Client {
	stripe.Key = secretKey
	return &Client{log: log}
}

// Intent результат создания платёжного intent
type Intent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Status       string
}

// CreateIntent создает платёжный intent на сумму бронирования
// ID бронирования сохраняется в metadata - по нему сверяется подтверждение оплаты
func (c *Client) CreateIntent(bookingID string, amountCents int64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", bookingID)
	params.IdempotencyKey = stripe.String("booking-" + bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		c.log.Error("Failed to create payment intent for booking_id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: booking_id=%s: %v", ErrCreateIntent, bookingID, err)
	}

	c.log.Info("Created payment intent %s for booking_id=%s, amount_cents=%d", pi.ID, bookingID, amountCents)

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Status:       string(pi.Status),
	}, nil
}

// GetIntent получает платёжный intent по ID
func (c *Client) GetIntent(intentID string) (*Intent, error) {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: intent_id=%s: %v", ErrGetIntent, intentID, err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Status:       string(pi.Status),
	}, nil
}

// VerifySucceeded проверяет, что intent существует и оплата по нему прошла
func (c *Client) VerifySucceeded(intentID string) (*Intent, error) {
	intent, err := c.GetIntent(intentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != string(stripe.PaymentIntentStatusSucceeded) {
		return nil, fmt.Errorf("%w: intent_id=%s, status=%s", ErrIntentNotSucceeded, intentID, intent.Status)
	}

	return intent, nil
}
