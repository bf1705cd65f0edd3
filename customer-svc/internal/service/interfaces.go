package service

import (
	"context"

	"smarthotel/internal/cart"
	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	"smarthotel/internal/session"
)

type CustomerGateway interface {
	ListMenu(ctx context.Context, search string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, menuID int) (*domain.MenuItem, error)
	PlaceOrder(ctx context.Context, req gateway.PlaceOrderRequest) (int, error)
	FetchCustomerOrders(ctx context.Context, customerID int) ([]domain.Order, error)
	SubmitReview(ctx context.Context, submission gateway.ReviewSubmission) (*domain.Review, error)
	FetchReviews(ctx context.Context, menuID int) ([]domain.Review, error)
	FetchLoyalty(ctx context.Context) (*domain.LoyaltySummary, error)
	RedeemSilverDiscount(ctx context.Context) (string, error)
	RedeemPlatinumDiscount(ctx context.Context) (string, error)
}

type CustomerSession interface {
	UserID(ctx context.Context) (int, error)
	Profile(ctx context.Context) (*domain.SessionProfile, error)
	SetFlag(ctx context.Context, flag, value string) error
	TakeFlag(ctx context.Context, flag string) (string, bool, error)
}

type CheckoutInterface interface {
	PlaceOrder(ctx context.Context, tableNumber string) (*PlacedOrder, error)
	LastOrder() (*PlacedOrder, bool)
	OwnsOrder(orderID int) bool
}

type OrderHistoryInterface interface {
	Activate(ctx context.Context) error
	Deactivate()
	Refresh(ctx context.Context) error
	Orders() []domain.Order
	ActiveTab() domain.OrderStatus
}

type ReviewInterface interface {
	Submit(ctx context.Context, menuID int, form ReviewInput) (*domain.Review, error)
	List(ctx context.Context, menuID int) ([]domain.Review, error)
}

type LoyaltyInterface interface {
	Summary(ctx context.Context) (*domain.LoyaltySummary, error)
	Redeem(ctx context.Context, tier string) (string, error)
}

type NotificationInterface interface {
	HandleEvent(ctx context.Context, event domain.OrderEvent) error
	Pending(ctx context.Context) (Notifications, error)
}

type ReceiptInterface interface {
	QRCode(orderID int) ([]byte, error)
	Receipt(ctx context.Context) ([]byte, error)
}

var (
	_ CustomerGateway       = (*gateway.Gateway)(nil)
	_ CustomerSession       = (*session.Session)(nil)
	_ CheckoutInterface     = (*Checkout)(nil)
	_ OrderHistoryInterface = (*OrderHistory)(nil)
	_ ReviewInterface       = (*ReviewService)(nil)
	_ LoyaltyInterface      = (*LoyaltyService)(nil)
	_ NotificationInterface = (*Notifier)(nil)
	_ ReceiptInterface      = (*Receipts)(nil)
	_ CartStore             = (*cart.Cart)(nil)
)
