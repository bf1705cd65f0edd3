package gateway

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"smarthotel/internal/domain"
)

const unknownSentiment = "unknown"

type ReviewSubmission struct {
	MenuItemID   int    `json:"menu_id"`
	Rating       int    `json:"rating"`
	Feedback     string `json:"feedback"`
	CustomerName string `json:"customer_name"`
}

func (g *Gateway) SubmitReview(ctx context.Context, submission ReviewSubmission) (*domain.Review, error) {
	const op = "submit review"
	resp, err := g.sendJSON(ctx, op, http.MethodPost, "/reviews", submission)
	if err != nil {
		return nil, err
	}
	var body struct {
		ReviewID int           `json:"review_id"`
		Review   domain.Review `json:"review"`
	}
	if err := finish(op, resp, &body); err != nil {
		return nil, err
	}
	review := body.Review
	if review.ID == 0 {
		review.ID = body.ReviewID
	}
	if review.MenuItemID == 0 {
		review.MenuItemID = submission.MenuItemID
	}
	review.Sentiment = normalizeSentiment(review.Sentiment)
	return &review, nil
}

func (g *Gateway) FetchReviews(ctx context.Context, menuID int) ([]domain.Review, error) {
	const op = "fetch reviews"
	resp, err := g.send(ctx, op, http.MethodGet, "/reviews/"+strconv.Itoa(menuID), nil, "")
	if err != nil {
		return nil, err
	}
	var reviews []domain.Review
	if err := finish(op, resp, &reviews); err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].MenuItemID == 0 {
			reviews[i].MenuItemID = menuID
		}
		reviews[i].Sentiment = normalizeSentiment(reviews[i].Sentiment)
	}
	return reviews, nil
}

func normalizeSentiment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return unknownSentiment
	}
	return s
}
