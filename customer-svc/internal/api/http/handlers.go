package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"smarthotel/customer-svc/internal/service"
	"smarthotel/internal/cart"
	"smarthotel/internal/domain"
	"smarthotel/internal/respond"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu          *service.MenuService
	Cart          *cart.Cart
	Checkout      service.CheckoutInterface
	History       service.OrderHistoryInterface
	Reviews       service.ReviewInterface
	Loyalty       service.LoyaltyInterface
	Notifications service.NotificationInterface
	Receipts      service.ReceiptInterface
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", respond.Health("customer-svc")).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}/reviews", h.listReviews).Methods("GET")
	r.HandleFunc("/api/menu/{id}/reviews", h.submitReview).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.changeQuantity).Methods("PATCH")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")
	r.HandleFunc("/api/receipt", h.receipt).Methods("GET")

	r.HandleFunc("/api/loyalty", h.loyalty).Methods("GET")
	r.HandleFunc("/api/loyalty/redeem/{tier}", h.redeem).Methods("POST")

	r.HandleFunc("/api/notifications", h.notifications).Methods("GET")
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, service.ViewCart(h.Cart.Lines()))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	respond.JSON(w, http.StatusOK, service.ViewCart(nil))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MenuID int `json:"menu_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	item, err := h.Menu.Item(r.Context(), payload.MenuID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnpricedItem):
			respond.Fail(w, http.StatusUnprocessableEntity, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}
	h.Cart.AddItem(*item)
	respond.JSON(w, http.StatusOK, service.ViewCart(h.Cart.Lines()))
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid menu id")
		return
	}
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Cart.ChangeQuantity(menuID, payload.Delta); err != nil {
		switch {
		case errors.Is(err, cart.ErrUnknownItem):
			respond.Fail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cart.ErrInvalidDelta):
			respond.Fail(w, http.StatusBadRequest, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, service.ViewCart(h.Cart.Lines()))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableNumber string `json:"table_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	placed, err := h.Checkout.PlaceOrder(r.Context(), payload.TableNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			respond.Fail(w, http.StatusBadRequest, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Order placed successfully",
		"order_id": placed.OrderID,
		"order":    placed,
	})
}

// listOrders returns the cached history. ?status= picks a tab; without it
// the active tab is used.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	tab := h.History.ActiveTab()
	if status := r.URL.Query().Get("status"); status != "" {
		tab = domain.OrderStatus(status)
	}
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"active_tab": tab,
		"orders":     service.FilterOrders(h.History.Orders(), tab),
	})
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid order id")
		return
	}
	png, err := h.Receipts.QRCode(orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderID):
			respond.Fail(w, http.StatusBadRequest, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) receipt(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.Receipts.Receipt(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoOrder):
			respond.Fail(w, http.StatusNotFound, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, service.ErrInvalidMenuItem.Error())
		return
	}
	reviews, err := h.Reviews.List(r.Context(), menuID)
	if err != nil {
		h.reviewError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, reviews)
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, service.ErrInvalidMenuItem.Error())
		return
	}
	var input service.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	review, err := h.Reviews.Submit(r.Context(), menuID, input)
	if err != nil {
		h.reviewError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, review)
}

func (h *Handler) reviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidMenuItem):
		respond.Fail(w, http.StatusBadRequest, err.Error())
	default:
		respond.Error(w, err)
	}
}

func (h *Handler) loyalty(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Loyalty.Summary(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}

func (h *Handler) redeem(w http.ResponseWriter, r *http.Request) {
	message, err := h.Loyalty.Redeem(r.Context(), mux.Vars(r)["tier"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTier):
			respond.Fail(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotEligible):
			respond.Fail(w, http.StatusConflict, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}
	respond.Message(w, http.StatusOK, message)
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Notifications.Pending(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, pending)
}
