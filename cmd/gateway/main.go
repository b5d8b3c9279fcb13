package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"venuedesk/internal/adapters/httpserver"
	"venuedesk/internal/adapters/observability"
	redisad "venuedesk/internal/adapters/redis"
	"venuedesk/internal/adapters/venueapi"
	"venuedesk/internal/app"
	"venuedesk/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// deps
	backend := venueapi.New(cfg.BackendBase)
	store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	currency := app.NewCurrency(backend, cfg.DefaultCurrency)
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	currency.Init(initCtx)
	cancel()
	log.Info().Str("currency", currency.Code()).Msg("display currency ready")

	h := &httpserver.Handlers{
		Sessions:  app.NewSessions(backend, store, cfg.SessionTTL),
		Catalog:   app.NewCatalog(backend, backend),
		Bookings:  app.NewBookings(backend, backend),
		Payments:  app.NewPayments(backend, cfg.PollInterval, cfg.PollMaxAttempts),
		Dashboard: app.NewDashboard(backend, backend),
		Listings:  app.NewListings(backend),
		Admin:     app.NewAdmin(backend),
		Currency:  currency,
	}

	// http
	srv := httpserver.New(cfg.RequestTimeout, cfg.RateLimitRPS, cfg.RateLimitBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.BackendBase).Msg("gateway listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
