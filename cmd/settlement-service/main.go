package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/charlesnunot/seller-settlement-service/internal/app/background"
	"github.com/charlesnunot/seller-settlement-service/internal/app/setup"
	"github.com/charlesnunot/seller-settlement-service/internal/config"
	httpdelivery "github.com/charlesnunot/seller-settlement-service/internal/delivery/http"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/handlers"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	if migrationPath := os.Getenv("MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(deps.DB, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases := setup.InitializeUseCases(deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tasks := background.NewBackgroundTasks(deps, usecases)
	if err := tasks.StartAll(ctx); err != nil {
		log.Fatalf("failed to start background tasks: %v", err)
	}

	router := httpdelivery.NewRouter(httpdelivery.Handlers{
		Deposit:      handlers.NewDepositHandler(usecases.DepositUsecase, deps.Metrics),
		Deduction:    handlers.NewDeductionHandler(usecases.DeductionUsecase, deps.Metrics),
		Debt:         handlers.NewDebtHandler(usecases.DebtUsecase, deps.Metrics),
		Obligation:   handlers.NewObligationHandler(usecases.ObligationUsecase, deps.Metrics),
		Penalty:      handlers.NewPenaltyHandler(usecases.PenaltyUsecase, deps.Metrics),
		Compensation: handlers.NewCompensationHandler(usecases.CompensationUsecase, deps.Metrics, cfg.Jobs.CompensationLimit),
		Transfer:     handlers.NewTransferHandler(usecases.TransferUsecase, deps.Metrics, cfg.Jobs.TransferRetryLimit),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server started on %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := deps.Publisher.Close(); err != nil {
		log.Printf("kafka publisher close error: %v", err)
	}
}
