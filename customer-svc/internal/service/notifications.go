package service

import (
	"context"
	"log"

	"smarthotel/internal/domain"
	"smarthotel/internal/session"
)

const defaultAcceptedMessage = "Your order has been accepted"

type OrderOwner interface {
	OwnsOrder(orderID int) bool
}

// Notifications are the one-shot messages waiting for the customer.
type Notifications struct {
	OrderPlaced   bool   `json:"order_placed"`
	OrderAccepted string `json:"order_accepted,omitempty"`
}

type Notifier struct {
	session CustomerSession
	owner   OrderOwner
}

func NewNotifier(sess CustomerSession, owner OrderOwner) *Notifier {
	return &Notifier{session: sess, owner: owner}
}

// HandleEvent stores an acceptance message when a chef accepts an order
// placed from this device. Other events are ignored.
func (n *Notifier) HandleEvent(ctx context.Context, event domain.OrderEvent) error {
	if event.Type != domain.EventOrderAccepted || !n.owner.OwnsOrder(event.OrderID) {
		return nil
	}
	message := event.Message
	if message == "" {
		message = defaultAcceptedMessage
	}
	log.Printf("[NOTIFY] order %d accepted", event.OrderID)
	return n.session.SetFlag(ctx, session.FlagOrderAccepted, message)
}

// Pending takes every waiting notification; each is returned once.
func (n *Notifier) Pending(ctx context.Context) (Notifications, error) {
	var out Notifications
	placed, ok, err := n.session.TakeFlag(ctx, session.FlagOrderPlaced)
	if err != nil {
		return out, err
	}
	out.OrderPlaced = ok && placed == "true"

	accepted, ok, err := n.session.TakeFlag(ctx, session.FlagOrderAccepted)
	if err != nil {
		return out, err
	}
	if ok {
		out.OrderAccepted = accepted
	}
	return out, nil
}
