package httpapi

import (
	"net/http"

	"smarthotel/internal/account"
	"smarthotel/internal/ratelimit"
	"smarthotel/internal/ws"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const CartRoom = "cart"

func NewRouter(handler *Handler, accounts *account.Handler, hub *ws.Hub, limiter *ratelimit.RateLimiter) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	if accounts != nil {
		accounts.RegisterRoutes(r)
	}
	r.Handle("/ws/cart", ws.Handler(hub, CartRoom)).Methods("GET")
	if limiter != nil {
		r.Use(limiter.Limit)
	}
	return cors.Default().Handler(r)
}
