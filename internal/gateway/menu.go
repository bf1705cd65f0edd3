package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"smarthotel/internal/domain"
)

// ListMenu returns the menu, optionally filtered by name. The backend answers
// an empty search with a message object, which is reported as an empty list.
func (g *Gateway) ListMenu(ctx context.Context, search string) ([]domain.MenuItem, error) {
	const op = "list menu"
	path := "/menu"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}
	resp, err := g.send(ctx, op, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := finish(op, resp, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []domain.MenuItem{}, nil
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return items, nil
}

func (g *Gateway) GetMenuItem(ctx context.Context, menuID int) (*domain.MenuItem, error) {
	const op = "get menu item"
	resp, err := g.send(ctx, op, http.MethodGet, "/get_menu/"+strconv.Itoa(menuID), nil, "")
	if err != nil {
		return nil, err
	}
	var item domain.MenuItem
	if err := finish(op, resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (g *Gateway) AddMenuItem(ctx context.Context, item domain.MenuItem) (string, error) {
	const op = "add menu item"
	form := url.Values{}
	form.Set("name", item.Name)
	form.Set("description", item.Description)
	form.Set("price", item.Price.StringFixed(2))
	form.Set("category", item.Category)
	form.Set("image_url", item.ImageURL)
	resp, err := g.sendForm(ctx, op, "/add_menu", form)
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

type menuPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (g *Gateway) UpdateMenuItem(ctx context.Context, item domain.MenuItem) (string, error) {
	const op = "update menu item"
	resp, err := g.sendJSON(ctx, op, http.MethodPut, "/update_menu/"+strconv.Itoa(item.ID), menuPayload{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Category:    item.Category,
		ImageURL:    item.ImageURL,
	})
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) DeleteMenuItem(ctx context.Context, menuID int) (string, error) {
	const op = "delete menu item"
	resp, err := g.send(ctx, op, http.MethodDelete, "/delete_menu/"+strconv.Itoa(menuID), nil, "")
	if err != nil {
		return "", err
	}
	return message(op, resp)
}
