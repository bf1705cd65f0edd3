package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"smarthotel/internal/domain"
	"smarthotel/internal/poller"
	"smarthotel/internal/session"
)

const HistoryInterval = 10 * time.Second

// OrderHistory keeps the customer's orders fresh while active. A failed
// fetch keeps the last good list; without a session the list is empty.
type OrderHistory struct {
	gateway   CustomerGateway
	session   CustomerSession
	scheduler *poller.Scheduler

	mu     sync.RWMutex
	orders []domain.Order
	tab    domain.OrderStatus
}

func NewOrderHistory(gw CustomerGateway, sess CustomerSession, interval time.Duration) *OrderHistory {
	h := &OrderHistory{
		gateway: gw,
		session: sess,
		orders:  []domain.Order{},
		tab:     domain.StatusPending,
	}
	h.scheduler = poller.New(poller.Job{
		Name:      "fetch-customer-orders",
		Interval:  interval,
		Immediate: true,
		Run:       h.Refresh,
	})
	return h
}

func (h *OrderHistory) Activate(ctx context.Context) error {
	return h.scheduler.Start(ctx)
}

func (h *OrderHistory) Deactivate() {
	h.scheduler.Stop()
}

func (h *OrderHistory) Refresh(ctx context.Context) error {
	customerID, err := h.session.UserID(ctx)
	if errors.Is(err, session.ErrNoSession) {
		h.reset()
		return nil
	}
	if err != nil {
		return err
	}
	orders, err := h.gateway.FetchCustomerOrders(ctx, customerID)
	if err != nil {
		log.Printf("ERROR: refreshing order history: %v", err)
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	h.mu.Lock()
	h.orders = orders
	if len(orders) > 0 {
		switch status := orders[0].Status; status {
		case domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted:
			h.tab = status
		}
	}
	h.mu.Unlock()
	return nil
}

func (h *OrderHistory) reset() {
	h.mu.Lock()
	h.orders = []domain.Order{}
	h.tab = domain.StatusPending
	h.mu.Unlock()
}

func (h *OrderHistory) Orders() []domain.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.Order, len(h.orders))
	copy(out, h.orders)
	return out
}

// ActiveTab is the status of the most recent order, Pending until one is
// known.
func (h *OrderHistory) ActiveTab() domain.OrderStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tab
}

// FilterOrders returns the orders whose status is status.
func FilterOrders(orders []domain.Order, status domain.OrderStatus) []domain.Order {
	filtered := []domain.Order{}
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
