package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
	RoleChef     Role = "Chef"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleChef:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
)

type MenuItem struct {
	ID          int             `json:"menu_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
}

type OrderLine struct {
	FoodName string          `json:"food_name"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID          int         `json:"order_id"`
	TableNumber int         `json:"table_number"`
	CustomerID  int         `json:"customer_id,omitempty"`
	Status      OrderStatus `json:"status"`
	Lines       []OrderLine `json:"items"`
}

// UnmarshalJSON accepts both "status" (customer history) and "order_status"
// (chef queue) for the order state.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var raw struct {
		plain
		OrderStatus OrderStatus `json:"order_status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = Order(raw.plain)
	if o.Status == "" {
		o.Status = raw.OrderStatus
	}
	return nil
}

// OrderView is an Order plus the fields only this device tracks.
// TimeLeft is nil once the order has been accepted locally.
type OrderView struct {
	Order
	TimeLeft         *int `json:"time_left"`
	AcceptedLocally  bool `json:"accepted"`
	CompletedLocally bool `json:"completed"`
}

func (v *OrderView) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &v.Order); err != nil {
		return err
	}
	var local struct {
		TimeLeft  *int `json:"time_left"`
		Accepted  bool `json:"accepted"`
		Completed bool `json:"completed"`
	}
	if err := json.Unmarshal(data, &local); err != nil {
		return err
	}
	v.TimeLeft = local.TimeLeft
	v.AcceptedLocally = local.Accepted
	v.CompletedLocally = local.Completed
	return nil
}

type Review struct {
	ID           int       `json:"review_id"`
	MenuItemID   int       `json:"menu_id"`
	Rating       int       `json:"rating"`
	Feedback     string    `json:"feedback"`
	Sentiment    string    `json:"sentiment"`
	CustomerName string    `json:"customer_name"`
	FoodName     string    `json:"food_name,omitempty"`
	CreatedAt    Timestamp `json:"created_at"`
}

type SessionProfile struct {
	UserID    int    `json:"user_id"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarRef string `json:"Image_URL"`
}

type LoyaltyActivity struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	PointsChange int    `json:"points_change"`
	Amount       string `json:"amount"`
	ActivityTime string `json:"activity_time"`
}

type LoyaltySummary struct {
	UserID             int               `json:"user_id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	AvatarRef          string            `json:"Image_URL"`
	Points             int               `json:"loyalty_points"`
	Tier               string            `json:"tier"`
	DiscountPercentage decimal.Decimal   `json:"discount_percentage"`
	RedeemedDiscount   bool              `json:"redeemed_discount"`
	PointsToNextReward int               `json:"points_to_next_reward"`
	RecentActivities   []LoyaltyActivity `json:"recent_activities"`
}

type DashboardStats struct {
	TotalOrders    int             `json:"totalOrders"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalMenuItems int             `json:"totalMenuItems"`
	TotalCustomers int             `json:"totalCustomers"`
}

type SalesStats struct {
	Labels     []string `json:"labels"`
	Quantities []int    `json:"quantities"`
}

type CategoryRevenue struct {
	Categories []string          `json:"categories"`
	Revenues   []decimal.Decimal `json:"revenues"`
}
