package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	"smarthotel/internal/session"
	"smarthotel/internal/validation"
)

const anonymousReviewer = "Anonymous"

var ErrInvalidMenuItem = errors.New("invalid menu item")

type ReviewInput struct {
	Rating   string `json:"rating"`
	Feedback string `json:"feedback"`
}

type ReviewService struct {
	gateway CustomerGateway
	session CustomerSession
}

func NewReviewService(gw CustomerGateway, sess CustomerSession) *ReviewService {
	return &ReviewService{gateway: gw, session: sess}
}

// Submit validates the review locally and sends it under the logged-in
// customer's name, or anonymously without a session.
func (s *ReviewService) Submit(ctx context.Context, menuID int, input ReviewInput) (*domain.Review, error) {
	if menuID <= 0 {
		return nil, ErrInvalidMenuItem
	}
	if err := validation.Check(validation.ValidateReview(validation.ReviewForm{
		Rating:   input.Rating,
		Feedback: input.Feedback,
	})); err != nil {
		return nil, err
	}
	rating, _ := strconv.Atoi(strings.TrimSpace(input.Rating))

	name := anonymousReviewer
	profile, err := s.session.Profile(ctx)
	switch {
	case err == nil && profile.Name != "":
		name = profile.Name
	case err != nil && !errors.Is(err, session.ErrNoSession):
		return nil, err
	}

	return s.gateway.SubmitReview(ctx, gateway.ReviewSubmission{
		MenuItemID:   menuID,
		Rating:       rating,
		Feedback:     strings.TrimSpace(input.Feedback),
		CustomerName: name,
	})
}

func (s *ReviewService) List(ctx context.Context, menuID int) ([]domain.Review, error) {
	if menuID <= 0 {
		return nil, ErrInvalidMenuItem
	}
	reviews, err := s.gateway.FetchReviews(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
