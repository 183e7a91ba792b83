package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clinic-backend/internal/config"
	"clinic-backend/internal/database"
	"clinic-backend/internal/handler"
	"clinic-backend/internal/metrics"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic records API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			logger := newLogger(cfg)

			db, err := database.Connect(cfg, logger)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			logger.Info().Msg("database schema is up to date")
			return nil
		},
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsRelease() {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}

func runServer() error {
	// 1. Load configuration
	cfg := config.LoadConfig()
	logger := newLogger(cfg)
	logger.Info().Msg("configuration loaded")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info().Msg("database migration completed")
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	mappingRepo := repository.NewMappingRepo(db)
	tx := database.NewTransactor(db)

	// 5. Initialize services
	m := metrics.New(prometheus.DefaultRegisterer)
	authService := service.NewAuthService(userRepo)
	doctorService := service.NewDoctorService(doctorRepo, mappingRepo, tx, m)
	patientService := service.NewPatientService(patientRepo, mappingRepo, tx, m)
	mappingService := service.NewMappingService(mappingRepo, patientRepo, doctorRepo, m)

	// 6. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.CORS(cfg),
	)

	// 7. Register handlers and routes
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger, cfg.IsRelease()),
		Doctor:  handler.NewDoctorHandler(doctorService, logger),
		Patient: handler.NewPatientHandler(patientService, logger),
		Mapping: handler.NewMappingHandler(mappingService, logger),
		Health:  handler.NewHealthHandler(db),
	}, promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// 8. Serve until interrupted
	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server exited")
	return nil
}
