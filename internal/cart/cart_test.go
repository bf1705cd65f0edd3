package cart

import (
	"math/rand"
	"sync"
	"testing"

	"smarthotel/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id int, price string) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: "Item", Price: decimal.RequireFromString(price)}
}

func TestCart_AddTwiceThenRemove(t *testing.T) {
	c := New()
	a := menuItem(1, "5.00")

	c.AddItem(a)
	c.AddItem(a)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "10.00", c.Total().StringFixed(2))

	require.NoError(t, c.ChangeQuantity(1, -1))
	require.NoError(t, c.ChangeQuantity(1, -1))

	assert.Empty(t, c.Lines())
	assert.Equal(t, "0.00", c.Total().StringFixed(2))
}

func TestCart_ChangeQuantity(t *testing.T) {
	c := New()
	c.AddItem(menuItem(1, "2.50"))

	tests := []struct {
		name          string
		menuItemID    int
		delta         int
		expectedError error
	}{
		{name: "increment", menuItemID: 1, delta: 1},
		{name: "invalid_delta", menuItemID: 1, delta: 2, expectedError: ErrInvalidDelta},
		{name: "unknown_item", menuItemID: 9, delta: -1, expectedError: ErrUnknownItem},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := c.ChangeQuantity(testCase.menuItemID, testCase.delta)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}

	assert.Equal(t, "5.00", c.Total().StringFixed(2))
}

func TestCart_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []domain.MenuItem{
		menuItem(1, "5.00"),
		menuItem(2, "12.99"),
		menuItem(3, "0.50"),
	}

	for run := 0; run < 50; run++ {
		c := New()
		for step := 0; step < 100; step++ {
			item := items[rng.Intn(len(items))]
			switch rng.Intn(3) {
			case 0:
				c.AddItem(item)
			case 1:
				_ = c.ChangeQuantity(item.ID, 1)
			default:
				_ = c.ChangeQuantity(item.ID, -1)
			}

			lines := c.Lines()
			seen := map[int]bool{}
			expected := decimal.Zero
			for _, line := range lines {
				assert.Greater(t, line.Quantity, 0)
				assert.False(t, seen[line.MenuItemID], "duplicate line for %d", line.MenuItemID)
				seen[line.MenuItemID] = true
				expected = expected.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
			}
			assert.True(t, expected.Equal(c.Total()))
		}
	}
}

func TestCart_Subscribe(t *testing.T) {
	c := New()

	var mu sync.Mutex
	var updates [][]Line
	unsubscribe := c.Subscribe(func(lines []Line) {
		mu.Lock()
		updates = append(updates, lines)
		mu.Unlock()
	})

	c.AddItem(menuItem(1, "1.00"))
	c.AddItem(menuItem(2, "2.00"))
	unsubscribe()
	c.Clear()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, updates, 2)
	assert.Len(t, updates[1], 2)
	assert.Zero(t, c.Len())
}

func TestCart_UnitPriceSnapshot(t *testing.T) {
	c := New()
	c.AddItem(menuItem(1, "4.00"))
	c.AddItem(menuItem(1, "9.00"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "4.00", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "8.00", Total(lines).StringFixed(2))
}

func TestCart_RemoveSubmitted(t *testing.T) {
	c := New()
	c.AddItem(menuItem(1, "3.00"))
	c.AddItem(menuItem(1, "3.00"))
	c.AddItem(menuItem(2, "5.00"))
	submitted := c.Lines()

	c.AddItem(menuItem(1, "3.00"))
	c.AddItem(menuItem(3, "7.00"))
	c.RemoveSubmitted(submitted)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].MenuItemID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 3, lines[1].MenuItemID)
	assert.Equal(t, "10.00", c.Total().StringFixed(2))

	c.RemoveSubmitted(c.Lines())
	assert.Zero(t, c.Len())
}
