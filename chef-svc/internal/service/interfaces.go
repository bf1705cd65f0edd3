package service

import (
	"context"

	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	"smarthotel/internal/session"
)

type DashboardInterface interface {
	Activate(ctx context.Context) error
	Deactivate()
	Refresh(ctx context.Context) error
	Tick() bool
	Board() []domain.OrderView
	Accept(ctx context.Context, orderID int) (string, error)
	Reject(ctx context.Context, orderID int) (string, error)
	Complete(ctx context.Context, orderID int) (string, error)
}

type OrderGateway interface {
	FetchPendingOrders(ctx context.Context) ([]domain.Order, error)
	AcceptOrder(ctx context.Context, orderID, chefID int) (string, error)
	RejectOrder(ctx context.Context, orderID int) (string, error)
	CompleteOrder(ctx context.Context, orderID int) (string, error)
}

type ChefSession interface {
	UserID(ctx context.Context) (int, error)
	SetFlag(ctx context.Context, flag, value string) error
}

var (
	_ DashboardInterface = (*Dashboard)(nil)
	_ OrderGateway       = (*gateway.Gateway)(nil)
	_ ChefSession        = (*session.Session)(nil)
)
