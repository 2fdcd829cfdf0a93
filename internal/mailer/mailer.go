package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// Confirmation carries what the order confirmation email needs.
type Confirmation struct {
	To            string
	TransactionID string
	Price         float64
}

// Mailer sends an order confirmation. Kept as an interface so the
// provider can change without touching the payment flow.
type Mailer interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

// Mailgun sends confirmation emails through the Mailgun API.
type Mailgun struct {
	client *mailgun.MailgunImpl
	sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{
		client: mailgun.NewMailgun(domain, apiKey),
		sender: sender,
	}
}

func (m *Mailgun) SendConfirmation(ctx context.Context, c Confirmation) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	subject := "Your order is confirmed. Enjoy the Food soon"
	text := fmt.Sprintf("Payment confirmed. Transaction id %s", c.TransactionID)
	message := m.client.NewMessage(m.sender, subject, text, c.To)
	message.SetHtml(fmt.Sprintf(`
        <div>
            <h2>Payment confirmed</h2>
            <p>Payment Transaction Id %s</p>
        </div>
        `, c.TransactionID))

	if _, _, err := m.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send confirmation email: %v", err)
	}
	return nil
}
