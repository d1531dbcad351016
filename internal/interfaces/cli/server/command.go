package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gestio-app/gestio/internal/infrastructure/config"
	"github.com/gestio-app/gestio/internal/infrastructure/database"
	"github.com/gestio-app/gestio/internal/infrastructure/email"
	"github.com/gestio-app/gestio/internal/infrastructure/migration"
	"github.com/gestio-app/gestio/internal/infrastructure/persistence/seeds"
	"github.com/gestio-app/gestio/internal/infrastructure/repository"
	"github.com/gestio-app/gestio/internal/infrastructure/scheduler"
	httpRouter "github.com/gestio-app/gestio/internal/interfaces/http"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

var (
	env         string
	skipMigrate bool
	debugMode   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Gestio HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Skip database migrations on startup")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, debugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if !skipMigrate {
		manager := migration.NewManager(env, cfg.Database.Driver)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if err := seeds.Apply(database.Get(), &cfg.Seed); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	router := httpRouter.NewRouter(database.Get(), cfg, logger.NewLogger())
	router.SetupRoutes(cfg, logger.NewLogger())

	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()

	var reminderScheduler *scheduler.ReminderScheduler
	if cfg.Reminder.Enabled {
		processor := scheduler.NewExpiryReminderProcessor(
			repository.NewClientRepository(database.Get()),
			repository.NewProductRepository(database.Get()),
			email.NewSMTPEmailService(&cfg.Email),
			logger.NewLogger(),
		)
		reminderScheduler = scheduler.NewReminderScheduler(processor, cfg.Reminder.IntervalHours, logger.NewLogger())
		go reminderScheduler.Start(schedCtx)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", gin.Mode())

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
