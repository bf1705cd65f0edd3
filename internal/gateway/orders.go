package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"smarthotel/internal/domain"
	"smarthotel/internal/validation"

	"github.com/shopspring/decimal"
)

type PlacedLine struct {
	MenuID   int
	Quantity int
	Subtotal decimal.Decimal
}

type PlaceOrderRequest struct {
	TableNumber int
	CustomerID  int
	Lines       []PlacedLine
}

type placeOrderPayload struct {
	TableNumber int                `json:"table_number"`
	CustomerID  int                `json:"customer_id"`
	CartItems   []placedLinePayload `json:"cart_items"`
}

type placedLinePayload struct {
	MenuID   int     `json:"menu_id"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// FetchPendingOrders lists the chef queue. A non-2xx answer is reported as
// ErrEmptyResult rather than a failure.
func (g *Gateway) FetchPendingOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "fetch pending orders"
	resp, err := g.send(ctx, op, http.MethodGet, "/pending-orders", nil, "")
	if err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := finish(op, resp, &orders); err != nil {
		if _, ok := err.(*RejectedError); ok {
			return nil, ErrEmptyResult
		}
		return nil, err
	}
	return orders, nil
}

func (g *Gateway) FetchCustomerOrders(ctx context.Context, customerID int) ([]domain.Order, error) {
	const op = "fetch customer orders"
	if customerID <= 0 {
		return nil, &validation.Error{Violations: []string{"Customer ID not found. Please log in again."}}
	}
	form := url.Values{}
	form.Set("user_id", strconv.Itoa(customerID))
	resp, err := g.sendForm(ctx, op, "/pendingorders", form)
	if err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := finish(op, resp, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PlaceOrder submits a cart and returns the id the backend assigned.
func (g *Gateway) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int, error) {
	const op = "place order"
	if req.TableNumber <= 0 {
		return 0, &validation.Error{Violations: []string{"Table Number: Must be a positive number greater than 0."}}
	}
	payload := placeOrderPayload{
		TableNumber: req.TableNumber,
		CustomerID:  req.CustomerID,
		CartItems:   make([]placedLinePayload, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		payload.CartItems = append(payload.CartItems, placedLinePayload{
			MenuID:   line.MenuID,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal.InexactFloat64(),
		})
	}

	resp, err := g.sendJSON(ctx, op, http.MethodPost, "/place-order", payload)
	if err != nil {
		return 0, err
	}
	var body struct {
		OrderID int `json:"order_id"`
	}
	if err := finish(op, resp, &body); err != nil {
		return 0, err
	}
	return body.OrderID, nil
}

func (g *Gateway) AcceptOrder(ctx context.Context, orderID, chefID int) (string, error) {
	const op = "accept order"
	resp, err := g.sendJSON(ctx, op, http.MethodPost, "/accept-order", map[string]int{
		"order_id": orderID,
		"chef_id":  chefID,
	})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) RejectOrder(ctx context.Context, orderID int) (string, error) {
	const op = "reject order"
	resp, err := g.sendJSON(ctx, op, http.MethodPost, "/reject-order", map[string]int{"order_id": orderID})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) CompleteOrder(ctx context.Context, orderID int) (string, error) {
	const op = "complete order"
	resp, err := g.sendJSON(ctx, op, http.MethodPost, "/complete-order", map[string]int{"order_id": orderID})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}
