package httpapi

import (
	"net/http"

	"smarthotel/internal/account"
	"smarthotel/internal/ratelimit"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, accounts *account.Handler, limiter *ratelimit.RateLimiter) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	if accounts != nil {
		accounts.RegisterSessionRoutes(r)
	}
	if limiter != nil {
		r.Use(limiter.Limit)
	}
	return cors.Default().Handler(r)
}
