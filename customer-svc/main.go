package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpapi "smarthotel/customer-svc/internal/api/http"
	"smarthotel/customer-svc/internal/service"
	"smarthotel/config"
	"smarthotel/internal/account"
	"smarthotel/internal/cart"
	"smarthotel/internal/domain"
	"smarthotel/internal/events"
	"smarthotel/internal/gateway"
	"smarthotel/internal/ratelimit"
	"smarthotel/internal/server"
	"smarthotel/internal/session"
	"smarthotel/internal/ws"
)

func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	deviceID := config.DeviceID()
	sess := session.New(session.NewRedisStore(rdb, deviceID))
	gw := gateway.NewGateway(gateway.Config{BaseURL: getEnv("BACKEND_URL", "http://localhost:5000")}, config.NewHTTPClient())

	var publisher events.Publisher = events.NopPublisher{}
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(config.OrderEventsTopic)
		defer writer.Close()
		publisher = events.NewKafkaPublisher(writer)
	}

	hub := ws.NewHub()
	go hub.Run(ctx)

	customerCart := cart.New()
	customerCart.Subscribe(func(lines []cart.Line) {
		if err := hub.Broadcast(httpapi.CartRoom, "cart.updated", service.ViewCart(lines)); err != nil {
			log.Printf("ERROR: broadcasting cart: %v", err)
		}
	})

	checkout := service.NewCheckout(gw, sess, customerCart, publisher)
	notifier := service.NewNotifier(sess, checkout)

	if config.KafkaEnabled() {
		reader := config.NewKafkaReader(config.OrderEventsTopic, "customer-"+deviceID)
		defer reader.Close()
		go events.NewConsumer(reader, notifier.HandleEvent).Start(ctx)
	}

	history := service.NewOrderHistory(gw, sess, service.HistoryInterval)
	if err := history.Activate(ctx); err != nil {
		log.Fatal("Failed to start order history:", err)
	}
	defer history.Deactivate()

	handler := &httpapi.Handler{
		Menu:          service.NewMenuService(gw),
		Cart:          customerCart,
		Checkout:      checkout,
		History:       history,
		Reviews:       service.NewReviewService(gw, sess),
		Loyalty:       service.NewLoyaltyService(gw, sess),
		Notifications: notifier,
		Receipts: service.NewReceipts(
			service.DefaultQRGenerator{BaseURL: getEnv("REVIEW_BASE_URL", "http://localhost")},
			checkout,
			getEnv("HOTEL_NAME", "SmartHotel"),
		),
	}
	accounts := account.NewHandler(account.NewService(gw, sess, domain.RoleCustomer))
	router := httpapi.NewRouter(handler, accounts, hub, ratelimit.NewRateLimiter(20, 40))

	if err := server.Run(ctx, "Customer Service", ":"+getEnv("PORT", "8092"), router); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
