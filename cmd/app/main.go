package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kisansetu-backend/internal/events"
	httpx "kisansetu-backend/internal/http"
	"kisansetu-backend/internal/http/handlers"
	"kisansetu-backend/internal/repo"
	"kisansetu-backend/internal/service"
	"kisansetu-backend/pkg/config"
	"kisansetu-backend/pkg/logger"
	"kisansetu-backend/pkg/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("kisansetu-backend", cfg.Common.LogLevel)

	ctxDB, cancelDB := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDB()

	store := repo.New(cfg.Mongo.URI, cfg.Mongo.Database)
	if err := store.Connect(ctxDB); err != nil {
		// Not fatal: the services answer in demo mode until the process is
		// restarted with a reachable store.
		log.Error().Err(err).Str("uri", cfg.Mongo.URI).Msg("mongo connect failed, continuing without persistence")
	} else {
		log.Info().Str("uri", cfg.Mongo.URI).Msg("connected to mongo")
	}
	defer func() {
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		_ = store.Close(shCtx)
	}()

	var sink service.OrderEventSink
	if cfg.Rabbit.URL != "" {
		rc, err := rabbit.Connect(cfg.Rabbit.URL)
		if err != nil {
			log.Error().Err(err).Msg("rabbit connect failed, order events disabled")
		} else {
			defer func() { _ = rc.Close() }()
			if err := rabbit.DeclareEvents(rc.Ch); err != nil {
				log.Error().Err(err).Msg("declare events exchange failed, order events disabled")
			} else {
				sink = &events.Publisher{Pub: rabbit.NewPublisher(rc.Ch, rabbit.ExchangeEvents), Log: log}
			}
		}
	}

	orders := &service.Orders{Gateway: store, Events: sink, Log: log}
	signIn := &service.SignIn{Gateway: store, Log: log}

	router := httpx.NewRouter(&httpx.Handlers{
		Root:        handlers.Root,
		SignIn:      (&handlers.SignInHandler{Service: signIn, Log: log}).ServeHTTP,
		CreateOrder: (&handlers.CreateOrderHandler{Service: orders, Log: log}).ServeHTTP,
		ListOrders:  (&handlers.ListOrdersHandler{Service: orders, Log: log}).ServeHTTP,
		GetOrder:    (&handlers.GetOrderHandler{Service: orders, Log: log}).ServeHTTP,
	}, cfg.Admin.Token)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
