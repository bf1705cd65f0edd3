package gateway

import (
	"context"
	"net/http"

	"smarthotel/internal/domain"
)

func (g *Gateway) FetchLoyalty(ctx context.Context) (*domain.LoyaltySummary, error) {
	const op = "fetch loyalty"
	resp, err := g.send(ctx, op, http.MethodGet, "/loyalty", nil, "")
	if err != nil {
		return nil, err
	}
	var body struct {
		User domain.LoyaltySummary `json:"user"`
	}
	if err := finish(op, resp, &body); err != nil {
		return nil, err
	}
	return &body.User, nil
}

func (g *Gateway) RedeemSilverDiscount(ctx context.Context) (string, error) {
	const op = "redeem silver discount"
	resp, err := g.send(ctx, op, http.MethodPost, "/loyalty/redeem/silver", nil, "")
	if err != nil {
		return "", err
	}
	return message(op, resp)
}

func (g *Gateway) RedeemPlatinumDiscount(ctx context.Context) (string, error) {
	const op = "redeem platinum discount"
	resp, err := g.send(ctx, op, http.MethodPost, "/loyalty/redeem", nil, "")
	if err != nil {
		return "", err
	}
	return message(op, resp)
}
