package service

import (
	"context"
	"errors"
	"strings"

	"smarthotel/internal/cart"
	"smarthotel/internal/domain"
	"smarthotel/internal/validation"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrUnpricedItem   = errors.New("menu item has no valid price")
)

type MenuService struct {
	gateway CustomerGateway
}

func NewMenuService(gw CustomerGateway) *MenuService {
	return &MenuService{gateway: gw}
}

func (s *MenuService) List(ctx context.Context, search string) ([]domain.MenuItem, error) {
	return s.gateway.ListMenu(ctx, strings.TrimSpace(search))
}

// Item loads a menu item from the backend so the cart never holds a
// client-supplied price.
func (s *MenuService) Item(ctx context.Context, menuID int) (*domain.MenuItem, error) {
	if menuID <= 0 {
		return nil, &validation.Error{Violations: []string{"Menu ID: Must be a positive number greater than 0."}}
	}
	item, err := s.gateway.GetMenuItem(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		item.ID = menuID
	}
	if !item.Price.IsPositive() {
		return nil, ErrUnpricedItem
	}
	return item, nil
}

// CartView is the cart as shown to the customer.
type CartView struct {
	Lines []cart.Line `json:"items"`
	Total string      `json:"total"`
}

func ViewCart(lines []cart.Line) CartView {
	if lines == nil {
		lines = []cart.Line{}
	}
	return CartView{Lines: lines, Total: cart.Total(lines).StringFixed(2)}
}
