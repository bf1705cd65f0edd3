package service

import (
	"context"

	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	"smarthotel/internal/validation"
)

type MenuGateway interface {
	ListMenu(ctx context.Context, search string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, menuID int) (*domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item domain.MenuItem) (string, error)
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) (string, error)
	DeleteMenuItem(ctx context.Context, menuID int) (string, error)
}

type StatsGateway interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	SalesStats(ctx context.Context) (*domain.SalesStats, error)
	CategoryRevenue(ctx context.Context) (*domain.CategoryRevenue, error)
}

type MenuInterface interface {
	List(ctx context.Context, search string) ([]domain.MenuItem, error)
	Get(ctx context.Context, rawID string) (*domain.MenuItem, error)
	Add(ctx context.Context, form validation.MenuForm) (string, error)
	Update(ctx context.Context, form validation.MenuForm) (string, error)
	Delete(ctx context.Context, rawID string) (string, error)
}

type StatsInterface interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, bool, error)
	Sales(ctx context.Context) (*domain.SalesStats, bool, error)
	Categories(ctx context.Context) (*domain.CategoryRevenue, bool, error)
}

var (
	_ MenuGateway    = (*gateway.Gateway)(nil)
	_ StatsGateway   = (*gateway.Gateway)(nil)
	_ MenuInterface  = (*MenuService)(nil)
	_ StatsInterface = (*StatsService)(nil)
)
