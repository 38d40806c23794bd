package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lngate/lnurlpay/internal/api"
	"github.com/lngate/lnurlpay/internal/clients/lnd"
	"github.com/lngate/lnurlpay/internal/lightning"
	"github.com/lngate/lnurlpay/internal/network"
	"github.com/lngate/lnurlpay/internal/repository"
	"github.com/lngate/lnurlpay/internal/service"
	"github.com/lngate/lnurlpay/pkg/broker"
	"github.com/lngate/lnurlpay/pkg/config"
	"github.com/lngate/lnurlpay/pkg/job"
	"github.com/lngate/lnurlpay/pkg/logger"
	"github.com/lngate/lnurlpay/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	networks := network.NewProvider(cfg.Lightning.Networks)
	resolver := lightning.NewResolver(cfg.Lightning.InternalNodes, lnd.NewClient)
	issuer := lightning.NewIssuer(resolver, repo, cfg.Lightning.NodeTimeout)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceEventsTopic)
	defer producer.Close()

	s := service.New(repo, networks, issuer, resolver, producer)

	{
		job.NewService().
			RegisterJob("update settlement status", cfg.Jobs.SettlementPollInterval, s.UpdateSettlementStatus).
			RegisterJob("reject expired invoices", cfg.Jobs.ExpireSweepInterval, s.RejectExpiredInvoices).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
