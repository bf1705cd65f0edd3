package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "smarthotel/admin-svc/internal/api/http"
	"smarthotel/admin-svc/internal/service"
	"smarthotel/config"
	"smarthotel/internal/account"
	"smarthotel/internal/domain"
	"smarthotel/internal/gateway"
	"smarthotel/internal/ratelimit"
	"smarthotel/internal/server"
	"smarthotel/internal/session"
)

func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	sess := session.New(session.NewRedisStore(rdb, config.DeviceID()))
	gw := gateway.NewGateway(gateway.Config{BaseURL: getEnv("BACKEND_URL", "http://localhost:5000")}, config.NewHTTPClient())

	statsTTL, err := time.ParseDuration(getEnv("STATS_CACHE_TTL", "24h"))
	if err != nil {
		log.Fatal("Invalid STATS_CACHE_TTL:", err)
	}

	handler := httpapi.NewHandler(
		service.NewMenuService(gw),
		service.NewStatsService(gw, rdb, statsTTL),
	)
	accounts := account.NewHandler(account.NewService(gw, sess, domain.RoleAdmin))
	router := httpapi.NewRouter(handler, accounts, ratelimit.NewRateLimiter(20, 40))

	if err := server.Run(ctx, "Admin Service", ":"+getEnv("PORT", "8093"), router); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
