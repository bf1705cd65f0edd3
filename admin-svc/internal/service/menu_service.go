package service

import (
	"context"
	"strconv"
	"strings"

	"smarthotel/internal/domain"
	"smarthotel/internal/validation"

	"github.com/shopspring/decimal"
)

type MenuService struct {
	gateway MenuGateway
}

func NewMenuService(gw MenuGateway) *MenuService {
	return &MenuService{gateway: gw}
}

func (s *MenuService) List(ctx context.Context, search string) ([]domain.MenuItem, error) {
	return s.gateway.ListMenu(ctx, strings.TrimSpace(search))
}

func (s *MenuService) Get(ctx context.Context, rawID string) (*domain.MenuItem, error) {
	id, err := menuID(rawID)
	if err != nil {
		return nil, err
	}
	return s.gateway.GetMenuItem(ctx, id)
}

// Add checks every field of the form and sends nothing unless all pass.
func (s *MenuService) Add(ctx context.Context, form validation.MenuForm) (string, error) {
	if err := validation.Check(validation.ValidateMenuForm(form, false)); err != nil {
		return "", err
	}
	return s.gateway.AddMenuItem(ctx, toMenuItem(form))
}

func (s *MenuService) Update(ctx context.Context, form validation.MenuForm) (string, error) {
	if err := validation.Check(validation.ValidateMenuForm(form, true)); err != nil {
		return "", err
	}
	return s.gateway.UpdateMenuItem(ctx, toMenuItem(form))
}

func (s *MenuService) Delete(ctx context.Context, rawID string) (string, error) {
	id, err := menuID(rawID)
	if err != nil {
		return "", err
	}
	return s.gateway.DeleteMenuItem(ctx, id)
}

func menuID(raw string) (int, error) {
	if err := validation.Check(validation.ValidateField(validation.FieldMenuID, raw)); err != nil {
		return 0, err
	}
	id, _ := strconv.Atoi(strings.TrimSpace(raw))
	return id, nil
}

// toMenuItem converts a form that already passed validation.
func toMenuItem(form validation.MenuForm) domain.MenuItem {
	id, _ := strconv.Atoi(strings.TrimSpace(form.MenuID))
	price, _ := decimal.NewFromString(strings.TrimSpace(form.Price))
	return domain.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Price:       price,
		Category:    strings.TrimSpace(form.Category),
		ImageURL:    strings.TrimSpace(form.ImageURL),
	}
}
