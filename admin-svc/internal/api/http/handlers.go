package httpapi

import (
	"encoding/json"
	"net/http"

	"smarthotel/admin-svc/internal/service"
	"smarthotel/internal/respond"
	"smarthotel/internal/validation"

	"github.com/gorilla/mux"
)

const StaleHeader = "X-Stats-Stale"

type Handler struct {
	Menu  service.MenuInterface
	Stats service.StatsInterface
}

func NewHandler(menu service.MenuInterface, stats service.StatsInterface) *Handler {
	return &Handler{Menu: menu, Stats: stats}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", respond.Health("admin-svc")).Methods("GET")

	r.HandleFunc("/api/stats", h.getDashboard).Methods("GET")
	r.HandleFunc("/api/stats/sales", h.getSales).Methods("GET")
	r.HandleFunc("/api/stats/categories", h.getCategories).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")
}

type menuPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (p menuPayload) form(id string) validation.MenuForm {
	return validation.MenuForm{
		MenuID:      id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	stats, stale, err := h.Stats.Dashboard(r.Context())
	writeStats(w, stats, stale, err)
}

func (h *Handler) getSales(w http.ResponseWriter, r *http.Request) {
	stats, stale, err := h.Stats.Sales(r.Context())
	writeStats(w, stats, stale, err)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	stats, stale, err := h.Stats.Categories(r.Context())
	writeStats(w, stats, stale, err)
}

func writeStats(w http.ResponseWriter, stats interface{}, stale bool, err error) {
	if err != nil {
		respond.Error(w, err)
		return
	}
	if stale {
		w.Header().Set(StaleHeader, "true")
	}
	respond.JSON(w, http.StatusOK, stats)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, item)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var payload menuPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	message, err := h.Menu.Add(r.Context(), payload.form(""))
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusCreated, message)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var payload menuPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	message, err := h.Menu.Update(r.Context(), payload.form(mux.Vars(r)["id"]))
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusOK, message)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	message, err := h.Menu.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Message(w, http.StatusOK, message)
}
