package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"smarthotel/chef-svc/internal/service"
	"smarthotel/internal/respond"

	"github.com/gorilla/mux"
)

type Handler struct {
	Dashboard service.DashboardInterface
}

func NewHandler(dashboard service.DashboardInterface) *Handler {
	return &Handler{Dashboard: dashboard}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", respond.Health("chef-svc")).Methods("GET")
	r.HandleFunc("/api/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/board/{orderId}/accept", h.accept).Methods("POST")
	r.HandleFunc("/api/board/{orderId}/reject", h.reject).Methods("POST")
	r.HandleFunc("/api/board/{orderId}/complete", h.complete).Methods("POST")
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Dashboard.Board())
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.Dashboard.Accept)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.Dashboard.Reject)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.Dashboard.Complete)
}

type orderAction func(ctx context.Context, orderID int) (string, error)

func (h *Handler) act(w http.ResponseWriter, r *http.Request, action orderAction) {
	orderID, err := strconv.Atoi(mux.Vars(r)["orderId"])
	if err != nil || orderID <= 0 {
		respond.Fail(w, http.StatusBadRequest, "invalid order id")
		return
	}

	message, err := action(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownOrder):
			respond.Fail(w, http.StatusNotFound, err.Error())
		default:
			respond.Error(w, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"board":   h.Dashboard.Board(),
	})
}
