package cart

import (
	"errors"
	"sync"

	"smarthotel/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownItem  = errors.New("item is not in the cart")
	ErrInvalidDelta = errors.New("quantity can only change by +1 or -1")
)

// Line is one menu item in the cart. UnitPrice is the price at the moment
// the item was first added.
type Line struct {
	MenuItemID int             `json:"menu_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	UnitPrice  decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per menu item and never a line with a
// quantity below 1.
type Cart struct {
	mu          sync.Mutex
	lines       []Line
	subscribers map[int]func([]Line)
	nextID      int
}

func New() *Cart {
	return &Cart{subscribers: make(map[int]func([]Line))}
}

// Subscribe registers fn to receive the lines after every change and
// returns a function that removes it.
func (c *Cart) Subscribe(fn func([]Line)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Cart) AddItem(item domain.MenuItem) {
	c.mu.Lock()
	if idx := c.indexLocked(item.ID); idx >= 0 {
		c.lines[idx].Quantity++
	} else {
		c.lines = append(c.lines, Line{
			MenuItemID: item.ID,
			Name:       item.Name,
			Category:   item.Category,
			ImageURL:   item.ImageURL,
			UnitPrice:  item.Price,
			Quantity:   1,
		})
	}
	c.publishLocked()
}

// ChangeQuantity moves the quantity of a line by delta. A line that drops
// to 0 is removed.
func (c *Cart) ChangeQuantity(menuItemID, delta int) error {
	if delta != 1 && delta != -1 {
		return ErrInvalidDelta
	}
	c.mu.Lock()
	idx := c.indexLocked(menuItemID)
	if idx < 0 {
		c.mu.Unlock()
		return ErrUnknownItem
	}
	c.lines[idx].Quantity += delta
	if c.lines[idx].Quantity <= 0 {
		c.lines = append(c.lines[:idx:idx], c.lines[idx+1:]...)
	}
	c.publishLocked()
	return nil
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.publishLocked()
}

// RemoveSubmitted takes the quantities in submitted out of the cart and
// drops lines that reach 0. Lines added or raised after submitted was read
// keep whatever is left over.
func (c *Cart) RemoveSubmitted(submitted []Line) {
	c.mu.Lock()
	for _, sent := range submitted {
		idx := c.indexLocked(sent.MenuItemID)
		if idx < 0 {
			continue
		}
		c.lines[idx].Quantity -= sent.Quantity
		if c.lines[idx].Quantity <= 0 {
			c.lines = append(c.lines[:idx:idx], c.lines[idx+1:]...)
		}
	}
	c.publishLocked()
}

// Total is computed from the current lines on every call.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.lines)
}

func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func Total(lines []Line) decimal.Decimal {
	return total(lines)
}

func total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Subtotal())
	}
	return sum
}

func (c *Cart) indexLocked(menuItemID int) int {
	for i, line := range c.lines {
		if line.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

func (c *Cart) copyLocked() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// publishLocked releases the lock before calling subscribers.
func (c *Cart) publishLocked() {
	lines := c.copyLocked()
	subscribers := make([]func([]Line), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(lines)
	}
}
