package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smarthotel/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	TierSilver   = "Silver"
	TierPlatinum = "Platinum"
)

var (
	ErrNotEligible = errors.New("not eligible for this discount")
	ErrUnknownTier = errors.New("unknown loyalty tier")

	silverDiscount   = decimal.NewFromInt(15)
	platinumDiscount = decimal.NewFromInt(50)
)

type LoyaltyService struct {
	gateway CustomerGateway
	session CustomerSession
}

func NewLoyaltyService(gw CustomerGateway, sess CustomerSession) *LoyaltyService {
	return &LoyaltyService{gateway: gw, session: sess}
}

func (s *LoyaltyService) Summary(ctx context.Context) (*domain.LoyaltySummary, error) {
	if _, err := s.session.UserID(ctx); err != nil {
		return nil, err
	}
	return s.gateway.FetchLoyalty(ctx)
}

// Redeem checks eligibility against a fresh summary before asking the
// backend to apply the discount.
func (s *LoyaltyService) Redeem(ctx context.Context, tier string) (string, error) {
	var redeem func(context.Context) (string, error)
	switch {
	case strings.EqualFold(tier, TierSilver):
		redeem = s.gateway.RedeemSilverDiscount
	case strings.EqualFold(tier, TierPlatinum):
		redeem = s.gateway.RedeemPlatinumDiscount
	default:
		return "", ErrUnknownTier
	}

	summary, err := s.Summary(ctx)
	if err != nil {
		return "", err
	}
	if err := CheckEligibility(summary, tier); err != nil {
		return "", err
	}
	return redeem(ctx)
}

// CheckEligibility applies the redemption rules for tier to summary.
func CheckEligibility(summary *domain.LoyaltySummary, tier string) error {
	switch {
	case strings.EqualFold(tier, TierSilver):
		if summary.Tier != TierSilver || !summary.DiscountPercentage.Equal(silverDiscount) || summary.RedeemedDiscount {
			return fmt.Errorf("%w: you need to be in the Silver tier with an available 15%% discount", ErrNotEligible)
		}
	case strings.EqualFold(tier, TierPlatinum):
		if summary.Tier != TierPlatinum || !summary.DiscountPercentage.Equal(platinumDiscount) {
			return fmt.Errorf("%w: you need to be in the Platinum tier to redeem a 50%% discount", ErrNotEligible)
		}
	default:
		return ErrUnknownTier
	}
	return nil
}
