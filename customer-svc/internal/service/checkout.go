package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"smarthotel/internal/cart"
	"smarthotel/internal/domain"
	"smarthotel/internal/events"
	"smarthotel/internal/gateway"
	"smarthotel/internal/session"
	"smarthotel/internal/validation"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("your cart is empty")

type CartStore interface {
	Lines() []cart.Line
	RemoveSubmitted(submitted []cart.Line)
}

// PlacedOrder is what this device remembers about an order it submitted.
type PlacedOrder struct {
	OrderID     int             `json:"order_id"`
	TableNumber int             `json:"table_number"`
	CustomerID  int             `json:"customer_id"`
	Lines       []cart.Line     `json:"items"`
	Total       decimal.Decimal `json:"total"`
	PlacedAt    time.Time       `json:"placed_at"`
}

type Checkout struct {
	gateway   CustomerGateway
	session   CustomerSession
	cart      CartStore
	publisher events.Publisher
	now       func() time.Time

	// placing serialises submissions so a cart is sent at most once.
	placing sync.Mutex

	mu     sync.RWMutex
	last   *PlacedOrder
	placed map[int]bool
}

func NewCheckout(gw CustomerGateway, sess CustomerSession, c CartStore, publisher events.Publisher) *Checkout {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Checkout{
		gateway:   gw,
		session:   sess,
		cart:      c,
		publisher: publisher,
		now:       time.Now,
		placed:    make(map[int]bool),
	}
}

// PlaceOrder submits the cart for tableNumber. The submitted lines leave the
// cart only after the backend confirms the order; on any failure the cart is
// left intact. Items added while the request is in flight stay in the cart.
func (c *Checkout) PlaceOrder(ctx context.Context, tableNumber string) (*PlacedOrder, error) {
	if err := validation.Check(validation.ValidateField(validation.FieldTableNumber, tableNumber)); err != nil {
		return nil, err
	}
	table, _ := strconv.Atoi(strings.TrimSpace(tableNumber))

	c.placing.Lock()
	defer c.placing.Unlock()

	lines := c.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	customerID, err := c.session.UserID(ctx)
	if err != nil {
		return nil, err
	}

	req := gateway.PlaceOrderRequest{
		TableNumber: table,
		CustomerID:  customerID,
		Lines:       make([]gateway.PlacedLine, 0, len(lines)),
	}
	for _, line := range lines {
		req.Lines = append(req.Lines, gateway.PlacedLine{
			MenuID:   line.MenuItemID,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
	}

	orderID, err := c.gateway.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	c.cart.RemoveSubmitted(lines)
	placed := &PlacedOrder{
		OrderID:     orderID,
		TableNumber: table,
		CustomerID:  customerID,
		Lines:       lines,
		Total:       cart.Total(lines),
		PlacedAt:    c.now(),
	}
	c.mu.Lock()
	c.last = placed
	c.placed[orderID] = true
	c.mu.Unlock()

	if err := c.session.SetFlag(ctx, session.FlagOrderPlaced, "true"); err != nil {
		log.Printf("ERROR: storing order placed flag for order %d: %v", orderID, err)
	}
	if err := c.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:        domain.EventOrderPlaced,
		OrderID:     orderID,
		TableNumber: table,
		CustomerID:  customerID,
	}); err != nil {
		log.Printf("ERROR: publishing %s for order %d: %v", domain.EventOrderPlaced, orderID, err)
	}
	log.Printf("[CHECKOUT] order %d placed for table %d", orderID, table)

	copied := *placed
	return &copied, nil
}

func (c *Checkout) LastOrder() (*PlacedOrder, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.last == nil {
		return nil, false
	}
	copied := *c.last
	return &copied, true
}

// OwnsOrder reports whether the order was placed from this device.
func (c *Checkout) OwnsOrder(orderID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.placed[orderID]
}
