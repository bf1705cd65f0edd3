package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smarthotel/internal/domain"
	"smarthotel/internal/events"
	"smarthotel/internal/gateway"
	"smarthotel/internal/poller"
	"smarthotel/internal/reconcile"
	"smarthotel/internal/session"
)

var ErrUnknownOrder = errors.New("order is not on the board")

type Options struct {
	FetchInterval  time.Duration
	TickInterval   time.Duration
	DefaultTimeout int
}

func DefaultOptions() Options {
	return Options{
		FetchInterval:  10 * time.Second,
		TickInterval:   time.Second,
		DefaultTimeout: reconcile.DefaultTimeout,
	}
}

// Dashboard is the chef's order queue. While active it refreshes the board
// from the backend and runs the per-order countdowns.
type Dashboard struct {
	gateway   OrderGateway
	session   ChefSession
	publisher events.Publisher
	board     *reconcile.Board
	scheduler *poller.Scheduler
}

func NewDashboard(gw OrderGateway, sess ChefSession, publisher events.Publisher, board *reconcile.Board, opts Options) *Dashboard {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	d := &Dashboard{
		gateway:   gw,
		session:   sess,
		publisher: publisher,
		board:     board,
	}
	d.scheduler = poller.New(
		poller.Job{
			Name:      "fetch-pending-orders",
			Interval:  opts.FetchInterval,
			Immediate: true,
			Run:       d.Refresh,
		},
		poller.Job{
			Name:     "countdown",
			Interval: opts.TickInterval,
			Run: func(ctx context.Context) error {
				d.Tick()
				return nil
			},
		},
	)
	return d
}

func (d *Dashboard) Activate(ctx context.Context) error {
	return d.scheduler.Start(ctx)
}

func (d *Dashboard) Deactivate() {
	d.scheduler.Stop()
}

// Refresh fetches the queue and reconciles the board. A failed fetch keeps
// the board as it was; an empty answer leaves only locally accepted orders.
func (d *Dashboard) Refresh(ctx context.Context) error {
	orders, err := d.gateway.FetchPendingOrders(ctx)
	if err != nil && !errors.Is(err, gateway.ErrEmptyResult) {
		return fmt.Errorf("refresh board: %w", err)
	}
	d.board.Reconcile(orders)
	return nil
}

func (d *Dashboard) Tick() bool {
	return d.board.Tick()
}

func (d *Dashboard) Board() []domain.OrderView {
	return d.board.Snapshot()
}

func (d *Dashboard) Accept(ctx context.Context, orderID int) (string, error) {
	view, ok := d.board.Get(orderID)
	if !ok {
		return "", ErrUnknownOrder
	}
	chefID, err := d.session.UserID(ctx)
	if err != nil {
		return "", err
	}

	message, err := d.gateway.AcceptOrder(ctx, orderID, chefID)
	if err != nil {
		return "", err
	}

	d.board.MarkAccepted(orderID)
	if err := d.session.SetFlag(ctx, session.FlagOrderAccepted, message); err != nil {
		log.Printf("ERROR: storing accepted flag for order %d: %v", orderID, err)
	}
	d.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderAccepted,
		OrderID:     orderID,
		TableNumber: view.TableNumber,
		CustomerID:  view.CustomerID,
		ChefID:      chefID,
		Message:     message,
	})
	return message, nil
}

func (d *Dashboard) Reject(ctx context.Context, orderID int) (string, error) {
	view, ok := d.board.Get(orderID)
	if !ok {
		return "", ErrUnknownOrder
	}

	message, err := d.gateway.RejectOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	d.board.Remove(orderID)
	d.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderRejected,
		OrderID:     orderID,
		TableNumber: view.TableNumber,
		CustomerID:  view.CustomerID,
		Message:     message,
	})
	return message, nil
}

func (d *Dashboard) Complete(ctx context.Context, orderID int) (string, error) {
	view, ok := d.board.Get(orderID)
	if !ok {
		return "", ErrUnknownOrder
	}

	message, err := d.gateway.CompleteOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	d.board.MarkCompleted(orderID)
	d.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderCompleted,
		OrderID:     orderID,
		TableNumber: view.TableNumber,
		CustomerID:  view.CustomerID,
		Message:     message,
	})
	return message, nil
}

func (d *Dashboard) publish(ctx context.Context, event domain.OrderEvent) {
	if err := d.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("ERROR: publishing %s for order %d: %v", event.Type, event.OrderID, err)
	}
}
