package libs

import (
	"boutique-admin/models"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// OrderMailer sends a confirmation to the back office address each time a
// cart is converted to an order.
type OrderMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewOrderMailer(host string, port int, user, pass, from, to string) (*OrderMailer, error) {
	if host == "" || user == "" || pass == "" || to == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	if from == "" {
		from = user
	}

	return &OrderMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		to:     to,
	}, nil
}

func (m *OrderMailer) SendOrderConfirmation(order models.Order, items []models.CartItem) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Nouvelle commande #%d", order.ID))
	msg.SetBody("text/plain", OrderConfirmationBody(order, items))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func OrderConfirmationBody(order models.Order, items []models.CartItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Commande #%d du %s\n\n", order.ID, order.CreatedAt.Format("02/01/2006 15:04"))

	total := decimal.Zero
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		fmt.Fprintf(&b, "- %s x%d : %s\n", item.Name, item.Quantity, lineTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nTotal : %s\n", total.StringFixed(2))
	return b.String()
}
