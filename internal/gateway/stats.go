package gateway

import (
	"context"
	"net/http"

	"smarthotel/internal/domain"
)

func (g *Gateway) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	const op = "dashboard stats"
	var stats domain.DashboardStats
	if err := g.getJSON(ctx, op, "/dashboard-stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (g *Gateway) SalesStats(ctx context.Context) (*domain.SalesStats, error) {
	const op = "sales stats"
	var stats domain.SalesStats
	if err := g.getJSON(ctx, op, "/sales-stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (g *Gateway) CategoryRevenue(ctx context.Context) (*domain.CategoryRevenue, error) {
	const op = "category revenue"
	var revenue domain.CategoryRevenue
	if err := g.getJSON(ctx, op, "/category-revenue", &revenue); err != nil {
		return nil, err
	}
	return &revenue, nil
}

func (g *Gateway) getJSON(ctx context.Context, op, path string, out interface{}) error {
	resp, err := g.send(ctx, op, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return finish(op, resp, out)
}
