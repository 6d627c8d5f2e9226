package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sokonihq/sokoni/internal/adapter/config"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

// EmailNotifier sends order emails over SMTP. Sends run on their own
// goroutine so callers never block on the mail server, and failures are
// only ever logged: a lost email must not affect order state.
type EmailNotifier struct {
	cfg    *config.SMTP
	logger *zap.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailNotifier(cfg *config.SMTP, log *zap.Logger) (*EmailNotifier, error) {
	return &EmailNotifier{
		cfg:    cfg,
		logger: log,
		send:   smtp.SendMail,
	}, nil
}

func (n *EmailNotifier) SendOrderConfirmation(_ context.Context, order *domain.Order, user *domain.User) error {
	subject := fmt.Sprintf("Order %s received", order.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nwe received your order %s for a total of KES %s.\nWe will notify you when payment is confirmed.\n",
		user.Login, order.ID, order.TotalPrice.String())
	n.deliver(user.Email, subject, body)
	return nil
}

func (n *EmailNotifier) SendPaymentConfirmation(_ context.Context, order *domain.Order, user *domain.User) error {
	subject := fmt.Sprintf("Payment confirmed for order %s", order.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nyour payment of KES %s for order %s was confirmed (receipt %s).\nYour order is now being processed.\n",
		user.Login, order.TotalPrice.String(), order.ID, order.MpesaReceiptNumber)
	n.deliver(user.Email, subject, body)
	return nil
}

func (n *EmailNotifier) SendStatusUpdate(_ context.Context, order *domain.Order, user *domain.User, status domain.OrderStatus) error {
	subject := fmt.Sprintf("Order %s is now %s", order.ID, status)
	body := fmt.Sprintf(
		"Hello %s,\n\nthe status of your order %s changed to %s.\n",
		user.Login, order.ID, status)
	n.deliver(user.Email, subject, body)
	return nil
}

func (n *EmailNotifier) deliver(to, subject, body string) {
	if to == "" {
		n.logger.Debug("Skipping notification, user has no email address")
		return
	}

	msg := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	go func() {
		if err := n.send(addr, auth, n.cfg.From, []string{to}, []byte(msg)); err != nil {
			n.logger.Warn("Email delivery failed",
				zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		}
	}()
}

var _ port.Notifier = (*EmailNotifier)(nil)
