package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpapi "smarthotel/chef-svc/internal/api/http"
	"smarthotel/chef-svc/internal/service"
	"smarthotel/config"
	"smarthotel/internal/account"
	"smarthotel/internal/domain"
	"smarthotel/internal/events"
	"smarthotel/internal/gateway"
	"smarthotel/internal/ratelimit"
	"smarthotel/internal/reconcile"
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

	sess := session.New(session.NewRedisStore(rdb, config.DeviceID()))
	gw := gateway.NewGateway(gateway.Config{BaseURL: getEnv("BACKEND_URL", "http://localhost:5000")}, config.NewHTTPClient())

	var publisher events.Publisher = events.NopPublisher{}
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(config.OrderEventsTopic)
		defer writer.Close()
		publisher = events.NewKafkaPublisher(writer)
	}

	hub := ws.NewHub()
	go hub.Run(ctx)

	board := reconcile.NewBoard(reconcile.DefaultTimeout)
	board.OnChange(func(views []domain.OrderView) {
		if err := hub.Broadcast(httpapi.BoardRoom, "board.snapshot", views); err != nil {
			log.Printf("ERROR: broadcasting board: %v", err)
		}
	})

	dashboard := service.NewDashboard(gw, sess, publisher, board, service.DefaultOptions())
	if err := dashboard.Activate(ctx); err != nil {
		log.Fatal("Failed to start dashboard:", err)
	}
	defer dashboard.Deactivate()

	handler := httpapi.NewHandler(dashboard)
	accounts := account.NewHandler(account.NewService(gw, sess, domain.RoleChef))
	router := httpapi.NewRouter(handler, accounts, hub, ratelimit.NewRateLimiter(20, 40))

	if err := server.Run(ctx, "Chef Service", ":"+getEnv("PORT", "8091"), router); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
