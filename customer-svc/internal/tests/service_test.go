package tests

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smarthotel/customer-svc/internal/mocks"
	"smarthotel/customer-svc/internal/service"
	"smarthotel/internal/cart"
	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	sharedmocks "smarthotel/internal/mocks"
	"smarthotel/internal/poller"
	"smarthotel/internal/session"
	"smarthotel/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingCart struct {
	*cart.Cart
	removals atomic.Int32
}

func (c *countingCart) RemoveSubmitted(submitted []cart.Line) {
	c.removals.Add(1)
	c.Cart.RemoveSubmitted(submitted)
}

func biryani() domain.MenuItem {
	return domain.MenuItem{ID: 3, Name: "Biryani", Price: decimal.RequireFromString("12.50"), Category: "Rice"}
}

func karahi() domain.MenuItem {
	return domain.MenuItem{ID: 8, Name: "Karahi", Price: decimal.RequireFromString("20.00"), Category: "Main"}
}

func filledCart() *countingCart {
	c := &countingCart{Cart: cart.New()}
	c.AddItem(biryani())
	c.AddItem(biryani())
	c.AddItem(karahi())
	return c
}

func TestCheckout_PlaceOrder(t *testing.T) {
	var (
		ctx       = context.Background()
		gw        *mocks.CustomerGateway
		sess      *mocks.CustomerSession
		publisher *sharedmocks.Publisher
	)

	tests := []struct {
		name         string
		table        string
		emptyCart    bool
		prepareMocks func()
		expectErr    error
		violation    string
		placed       bool
	}{
		{
			name:      "table number must be positive",
			table:     "0",
			violation: "Table Number: Must be a positive number greater than 0.",
		},
		{
			name:      "table number must be a number",
			table:     "five",
			violation: "Table Number: Must be a valid number.",
		},
		{
			name:      "empty cart",
			table:     "4",
			emptyCart: true,
			expectErr: service.ErrEmptyCart,
		},
		{
			name:  "requires a logged in customer",
			table: "4",
			prepareMocks: func() {
				sess.On("UserID", ctx).Return(0, session.ErrNoSession).Once()
			},
			expectErr: session.ErrNoSession,
		},
		{
			name:  "backend failure keeps the cart",
			table: "4",
			prepareMocks: func() {
				sess.On("UserID", ctx).Return(12, nil).Once()
				gw.On("PlaceOrder", ctx, mock.Anything).
					Return(0, &gateway.NetworkError{Op: "place order", Err: errors.New("refused")}).Once()
			},
			expectErr: errors.New("network"),
		},
		{
			name:  "success clears cart and sets flag",
			table: " 4 ",
			prepareMocks: func() {
				sess.On("UserID", ctx).Return(12, nil).Once()
				gw.On("PlaceOrder", ctx, mock.MatchedBy(func(req gateway.PlaceOrderRequest) bool {
					return req.TableNumber == 4 && req.CustomerID == 12 && len(req.Lines) == 2 &&
						req.Lines[0].MenuID == 3 && req.Lines[0].Quantity == 2 &&
						req.Lines[0].Subtotal.Equal(decimal.RequireFromString("25.00")) &&
						req.Lines[1].MenuID == 8 && req.Lines[1].Subtotal.Equal(decimal.NewFromInt(20))
				})).Return(77, nil).Once()
				sess.On("SetFlag", ctx, session.FlagOrderPlaced, "true").Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderPlaced && e.OrderID == 77 && e.TableNumber == 4
				})).Return(nil).Once()
			},
			placed: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gw = mocks.NewCustomerGateway(t)
			sess = mocks.NewCustomerSession(t)
			publisher = sharedmocks.NewPublisher(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks()
			}
			c := filledCart()
			if testCase.emptyCart {
				c.Cart.Clear()
			}
			linesBefore := c.Lines()
			checkout := service.NewCheckout(gw, sess, c, publisher)

			placed, err := checkout.PlaceOrder(ctx, testCase.table)

			if !testCase.placed {
				require.Error(t, err)
				switch {
				case testCase.violation != "":
					var verr *validation.Error
					require.ErrorAs(t, err, &verr)
					assert.Equal(t, testCase.violation, verr.Violations[0])
				case errors.Is(testCase.expectErr, service.ErrEmptyCart), errors.Is(testCase.expectErr, session.ErrNoSession):
					assert.ErrorIs(t, err, testCase.expectErr)
				default:
					var netErr *gateway.NetworkError
					assert.ErrorAs(t, err, &netErr)
				}
				assert.Equal(t, linesBefore, c.Lines())
				assert.Zero(t, c.removals.Load())
				_, ok := checkout.LastOrder()
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 77, placed.OrderID)
			assert.Equal(t, "45.00", placed.Total.StringFixed(2))
			assert.Equal(t, int32(1), c.removals.Load())
			assert.Zero(t, c.Len())
			assert.True(t, checkout.OwnsOrder(77))
			assert.False(t, checkout.OwnsOrder(78))

			last, ok := checkout.LastOrder()
			require.True(t, ok)
			assert.Equal(t, placed.OrderID, last.OrderID)
			assert.Len(t, last.Lines, 2)
		})
	}
}

func TestCheckout_ConcurrentSubmitSendsCartOnce(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewCustomerGateway(t)
	sess := mocks.NewCustomerSession(t)
	publisher := sharedmocks.NewPublisher(t)

	sess.On("UserID", ctx).Return(12, nil).Once()
	gw.On("PlaceOrder", ctx, mock.Anything).Return(91, nil).Once()
	sess.On("SetFlag", ctx, session.FlagOrderPlaced, "true").Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	c := filledCart()
	checkout := service.NewCheckout(gw, sess, c, publisher)

	var (
		wg       sync.WaitGroup
		placed   atomic.Int32
		emptyErr atomic.Int32
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := checkout.PlaceOrder(ctx, "2")
			switch {
			case err == nil:
				placed.Add(1)
			case errors.Is(err, service.ErrEmptyCart):
				emptyErr.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), placed.Load())
	assert.Equal(t, int32(1), emptyErr.Load())
	assert.Equal(t, int32(1), c.removals.Load())
}

func TestCheckout_ItemsAddedDuringSubmitStayInCart(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewCustomerGateway(t)
	sess := mocks.NewCustomerSession(t)
	publisher := sharedmocks.NewPublisher(t)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	sess.On("UserID", ctx).Return(12, nil).Once()
	gw.On("PlaceOrder", ctx, mock.MatchedBy(func(req gateway.PlaceOrderRequest) bool {
		return len(req.Lines) == 1 && req.Lines[0].MenuID == 3 && req.Lines[0].Quantity == 1
	})).Run(func(args mock.Arguments) {
		close(inFlight)
		<-release
	}).Return(55, nil).Once()
	sess.On("SetFlag", ctx, session.FlagOrderPlaced, "true").Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	c := &countingCart{Cart: cart.New()}
	c.AddItem(biryani())
	checkout := service.NewCheckout(gw, sess, c, publisher)

	done := make(chan error, 1)
	go func() {
		_, err := checkout.PlaceOrder(ctx, "5")
		done <- err
	}()

	<-inFlight
	c.AddItem(karahi())
	c.AddItem(biryani())
	close(release)
	require.NoError(t, <-done)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].MenuItemID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 8, lines[1].MenuItemID)
	assert.Equal(t, 1, lines[1].Quantity)

	last, ok := checkout.LastOrder()
	require.True(t, ok)
	assert.Equal(t, "12.50", last.Total.StringFixed(2))
}

func TestOrderHistory_Refresh(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewCustomerGateway(t)
	sess := mocks.NewCustomerSession(t)
	history := service.NewOrderHistory(gw, sess, time.Hour)

	assert.Equal(t, domain.StatusPending, history.ActiveTab())
	assert.Empty(t, history.Orders())

	orders := []domain.Order{
		{ID: 5, TableNumber: 2, Status: domain.StatusInProgress},
		{ID: 4, TableNumber: 2, Status: domain.StatusCompleted},
	}
	sess.On("UserID", ctx).Return(12, nil).Times(2)
	gw.On("FetchCustomerOrders", ctx, 12).Return(orders, nil).Once()
	require.NoError(t, history.Refresh(ctx))
	assert.Equal(t, orders, history.Orders())
	assert.Equal(t, domain.StatusInProgress, history.ActiveTab())

	gw.On("FetchCustomerOrders", ctx, 12).
		Return(nil, &gateway.NetworkError{Op: "fetch customer orders", Err: errors.New("timeout")}).Once()
	assert.Error(t, history.Refresh(ctx))
	assert.Equal(t, orders, history.Orders())

	sess.On("UserID", ctx).Return(0, session.ErrNoSession).Once()
	require.NoError(t, history.Refresh(ctx))
	assert.Empty(t, history.Orders())
	assert.Equal(t, domain.StatusPending, history.ActiveTab())
}

func TestOrderHistory_ActivatePollsImmediately(t *testing.T) {
	gw := mocks.NewCustomerGateway(t)
	sess := mocks.NewCustomerSession(t)
	sess.On("UserID", mock.Anything).Return(12, nil).Once()
	gw.On("FetchCustomerOrders", mock.Anything, 12).
		Return([]domain.Order{{ID: 1, Status: domain.StatusCompleted}}, nil).Once()

	history := service.NewOrderHistory(gw, sess, time.Hour)
	require.NoError(t, history.Activate(context.Background()))
	defer history.Deactivate()

	assert.Eventually(t, func() bool {
		return history.ActiveTab() == domain.StatusCompleted
	}, time.Second, 10*time.Millisecond)
}

func TestFilterOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusCompleted},
		{ID: 3, Status: domain.StatusPending},
	}
	filtered := service.FilterOrders(orders, domain.StatusPending)
	require.Len(t, filtered, 2)
	assert.Equal(t, 3, filtered[1].ID)
	assert.NotNil(t, service.FilterOrders(nil, domain.StatusInProgress))
}

func TestReviewService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid review never reaches backend", func(t *testing.T) {
		svc := service.NewReviewService(mocks.NewCustomerGateway(t), mocks.NewCustomerSession(t))
		_, err := svc.Submit(ctx, 3, service.ReviewInput{Rating: "0", Feedback: ""})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 2)

		_, err = svc.Submit(ctx, 0, service.ReviewInput{Rating: "4", Feedback: "Great"})
		assert.ErrorIs(t, err, service.ErrInvalidMenuItem)
	})

	t.Run("uses the session name", func(t *testing.T) {
		gw := mocks.NewCustomerGateway(t)
		sess := mocks.NewCustomerSession(t)
		sess.On("Profile", ctx).Return(&domain.SessionProfile{UserID: 12, Name: "Sana Malik"}, nil).Once()
		gw.On("SubmitReview", ctx, gateway.ReviewSubmission{
			MenuItemID: 3, Rating: 5, Feedback: "Lovely rice", CustomerName: "Sana Malik",
		}).Return(&domain.Review{ID: 40, MenuItemID: 3, Rating: 5, Sentiment: "positive"}, nil).Once()

		review, err := service.NewReviewService(gw, sess).Submit(ctx, 3, service.ReviewInput{Rating: "5", Feedback: " Lovely rice "})
		require.NoError(t, err)
		assert.Equal(t, 40, review.ID)
	})

	t.Run("anonymous without session", func(t *testing.T) {
		gw := mocks.NewCustomerGateway(t)
		sess := mocks.NewCustomerSession(t)
		sess.On("Profile", ctx).Return(nil, session.ErrNoSession).Once()
		gw.On("SubmitReview", ctx, mock.MatchedBy(func(s gateway.ReviewSubmission) bool {
			return s.CustomerName == "Anonymous"
		})).Return(&domain.Review{ID: 41}, nil).Once()

		_, err := service.NewReviewService(gw, sess).Submit(ctx, 3, service.ReviewInput{Rating: "3", Feedback: "Okay"})
		require.NoError(t, err)
	})
}

func TestReviewService_ListNeverNil(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewCustomerGateway(t)
	gw.On("FetchReviews", ctx, 3).Return(nil, nil).Once()

	reviews, err := service.NewReviewService(gw, mocks.NewCustomerSession(t)).List(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
}

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name     string
		summary  domain.LoyaltySummary
		tier     string
		eligible bool
	}{
		{"silver available", domain.LoyaltySummary{Tier: "Silver", DiscountPercentage: decimal.NewFromInt(15)}, "silver", true},
		{"silver already redeemed", domain.LoyaltySummary{Tier: "Silver", DiscountPercentage: decimal.NewFromInt(15), RedeemedDiscount: true}, "silver", false},
		{"silver wrong discount", domain.LoyaltySummary{Tier: "Silver", DiscountPercentage: decimal.NewFromInt(10)}, "silver", false},
		{"gold cannot redeem silver", domain.LoyaltySummary{Tier: "Gold", DiscountPercentage: decimal.NewFromInt(15)}, "silver", false},
		{"platinum available", domain.LoyaltySummary{Tier: "Platinum", DiscountPercentage: decimal.RequireFromString("50.0")}, "Platinum", true},
		{"platinum redeemed flag ignored", domain.LoyaltySummary{Tier: "Platinum", DiscountPercentage: decimal.NewFromInt(50), RedeemedDiscount: true}, "platinum", true},
		{"bronze cannot redeem platinum", domain.LoyaltySummary{Tier: "Bronze"}, "platinum", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			summary := testCase.summary
			err := service.CheckEligibility(&summary, testCase.tier)
			if testCase.eligible {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, service.ErrNotEligible)
			}
		})
	}
}

func TestLoyaltyService_Redeem(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown tier", func(t *testing.T) {
		svc := service.NewLoyaltyService(mocks.NewCustomerGateway(t), mocks.NewCustomerSession(t))
		_, err := svc.Redeem(ctx, "gold")
		assert.ErrorIs(t, err, service.ErrUnknownTier)
	})

	t.Run("not eligible never calls redeem", func(t *testing.T) {
		gw := mocks.NewCustomerGateway(t)
		sess := mocks.NewCustomerSession(t)
		sess.On("UserID", ctx).Return(12, nil).Once()
		gw.On("FetchLoyalty", ctx).Return(&domain.LoyaltySummary{Tier: "Bronze"}, nil).Once()

		_, err := service.NewLoyaltyService(gw, sess).Redeem(ctx, "silver")
		assert.ErrorIs(t, err, service.ErrNotEligible)
	})

	t.Run("silver redeemed", func(t *testing.T) {
		gw := mocks.NewCustomerGateway(t)
		sess := mocks.NewCustomerSession(t)
		sess.On("UserID", ctx).Return(12, nil).Once()
		gw.On("FetchLoyalty", ctx).Return(&domain.LoyaltySummary{Tier: "Silver", DiscountPercentage: decimal.NewFromInt(15)}, nil).Once()
		gw.On("RedeemSilverDiscount", ctx).Return("Silver discount redeemed", nil).Once()

		message, err := service.NewLoyaltyService(gw, sess).Redeem(ctx, "silver")
		require.NoError(t, err)
		assert.Equal(t, "Silver discount redeemed", message)
	})
}

type ownedOrders map[int]bool

func (o ownedOrders) OwnsOrder(orderID int) bool { return o[orderID] }

func TestNotifier(t *testing.T) {
	ctx := context.Background()
	sess := mocks.NewCustomerSession(t)
	notifier := service.NewNotifier(sess, ownedOrders{7: true})

	require.NoError(t, notifier.HandleEvent(ctx, domain.OrderEvent{Type: domain.EventOrderAccepted, OrderID: 8}))
	require.NoError(t, notifier.HandleEvent(ctx, domain.OrderEvent{Type: domain.EventOrderPlaced, OrderID: 7}))

	sess.On("SetFlag", ctx, session.FlagOrderAccepted, "Your order has been accepted").Return(nil).Once()
	require.NoError(t, notifier.HandleEvent(ctx, domain.OrderEvent{Type: domain.EventOrderAccepted, OrderID: 7}))

	sess.On("TakeFlag", ctx, session.FlagOrderPlaced).Return("true", true, nil).Once()
	sess.On("TakeFlag", ctx, session.FlagOrderAccepted).Return("Order accepted", true, nil).Once()
	pending, err := notifier.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.Notifications{OrderPlaced: true, OrderAccepted: "Order accepted"}, pending)
}

type staticOrders struct {
	order *service.PlacedOrder
}

func (s staticOrders) LastOrder() (*service.PlacedOrder, bool) {
	return s.order, s.order != nil
}

func TestReceipts(t *testing.T) {
	qr := service.DefaultQRGenerator{BaseURL: "http://hotel.local/"}

	png, err := service.NewReceipts(qr, staticOrders{}, "SmartHotel").QRCode(12)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = service.NewReceipts(qr, staticOrders{}, "SmartHotel").QRCode(0)
	assert.ErrorIs(t, err, service.ErrInvalidOrderID)

	_, err = service.NewReceipts(qr, staticOrders{}, "SmartHotel").Receipt(context.Background())
	assert.ErrorIs(t, err, service.ErrNoOrder)

	lines := []cart.Line{{MenuItemID: 3, Name: "Biryani", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2}}
	order := &service.PlacedOrder{OrderID: 12, TableNumber: 4, Lines: lines, Total: cart.Total(lines), PlacedAt: time.Now()}
	pdf, err := service.NewReceipts(qr, staticOrders{order: order}, "SmartHotel").Receipt(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestOrderHistory_ActivateRejectsZeroInterval(t *testing.T) {
	history := service.NewOrderHistory(mocks.NewCustomerGateway(t), mocks.NewCustomerSession(t), 0)

	err := history.Activate(context.Background())
	assert.ErrorIs(t, err, poller.ErrInvalidInterval)
	history.Deactivate()
}
