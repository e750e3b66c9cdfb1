// Package main is the entry point for the WealthTrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rooseveltalej/WealthTrackAPI/config"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/dashboard"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/goal"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/history"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/importer"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/transaction"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/user"
	"github.com/rooseveltalej/WealthTrackAPI/internal/infra/db"
	"github.com/rooseveltalej/WealthTrackAPI/internal/infra/server/router"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/adapters"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/controller"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/persistence"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting WealthTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.SavingModel{},
		&model.InvestmentModel{},
		&model.ExpenseGoalModel{},
		&model.SavingGoalModel{},
		&model.InvestmentGoalModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	importRepo := persistence.NewImportRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()

	// Create use cases
	registerUseCase := user.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := user.NewLoginUserUseCase(userRepo, passwordService)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	getProfileUseCase := user.NewGetProfileUseCase(userRepo, goalRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo, passwordService)

	upsertIncomeUseCase := transaction.NewUpsertIncomeUseCase(transactionRepo, userRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, userRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	upsertGoalUseCase := goal.NewUpsertGoalUseCase(goalRepo, userRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, userRepo)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(userRepo, transactionRepo, goalRepo)
	getHistoryUseCase := history.NewGetHistoryUseCase(userRepo, transactionRepo, goalRepo)
	importCSVUseCase := importer.NewImportCSVUseCase(userRepo, importRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	userController := controller.NewUserController(registerUseCase, loginUseCase, getUserUseCase)
	profileController := controller.NewProfileController(getProfileUseCase, updateProfileUseCase)
	transactionController := controller.NewTransactionController(
		upsertIncomeUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(upsertGoalUseCase, createGoalUseCase)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	historyController := controller.NewHistoryController(getHistoryUseCase)
	importController := controller.NewImportController(importCSVUseCase)

	// Setup router
	r := router.NewRouter(
		healthController,
		userController,
		profileController,
		transactionController,
		goalController,
		dashboardController,
		historyController,
		importController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
