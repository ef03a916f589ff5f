package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/config"
	"github.com/mamadbah2/farmplan/internal/market"
	"github.com/mamadbah2/farmplan/internal/repository/mongodb"
	"github.com/mamadbah2/farmplan/internal/repository/sheets"
	"github.com/mamadbah2/farmplan/internal/scheduler"
	"github.com/mamadbah2/farmplan/internal/server/handlers"
	"github.com/mamadbah2/farmplan/internal/server/router"
	alertsvc "github.com/mamadbah2/farmplan/internal/service/alerts"
	reportingsvc "github.com/mamadbah2/farmplan/internal/service/reporting"
	"github.com/mamadbah2/farmplan/internal/state"
	"github.com/mamadbah2/farmplan/pkg/clients/notify"
	"github.com/mamadbah2/farmplan/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	store := state.NewStore(mongoRepo, baseLogger.Named("state"))
	if err := store.Load(context.Background()); err != nil {
		baseLogger.Fatal("failed to hydrate application state", zap.Error(err))
	}

	var sheetsRepo sheets.Repository
	if cfg.SheetsEnabled() {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("sheet export enabled")
	} else {
		baseLogger.Warn("sheets configuration missing, expense export disabled")
	}

	var notifier notify.Client
	if cfg.NotifyEnabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("alert notifications enabled")
	} else {
		baseLogger.Warn("alert webhook missing, notifications disabled")
	}

	catalog := market.NewCatalog(time.Now().UTC())
	reportingSvc := reportingsvc.NewService(store, sheetsRepo, baseLogger.Named("svc.reporting"))
	alertSvc := alertsvc.NewService(store, catalog, notifier, baseLogger.Named("svc.alerts"))

	engine := router.New(router.Handlers{
		Calculator: handlers.NewCalculatorHandler(baseLogger.Named("handlers.calculator")),
		Expenses:   handlers.NewExpenseHandler(store, baseLogger.Named("handlers.expenses")),
		Plan:       handlers.NewPlanHandler(store, baseLogger.Named("handlers.plan")),
		Learning:   handlers.NewLearningHandler(store, baseLogger.Named("handlers.learning")),
		Market:     handlers.NewMarketHandler(catalog, store, baseLogger.Named("handlers.market")),
		Alerts:     handlers.NewAlertHandler(store, alertSvc, baseLogger.Named("handlers.alerts")),
		Reports:    handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Scheduler, alertSvc, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
