package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lucaferrario/tournament-manager/config"
	"github.com/lucaferrario/tournament-manager/handlers"
	"github.com/lucaferrario/tournament-manager/live"
	"github.com/lucaferrario/tournament-manager/middleware"
	api "github.com/lucaferrario/tournament-manager/routes"
	"github.com/lucaferrario/tournament-manager/services"
	"github.com/lucaferrario/tournament-manager/storage"
	"github.com/lucaferrario/tournament-manager/tournament"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Optional workbook publisher. The engine itself never touches storage.
	var uploader storage.FileUploader
	if cfg.R2 != nil {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("workbook publishing disabled (R2 not configured)")
	}

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("WebSocket hub started")

	engine := tournament.New(tournament.WithScoringRules(cfg.Scoring))
	logger.Info("tournament engine initialized",
		slog.Int("win_points", cfg.Scoring.WinPoints),
		slog.Int("tiebreak_points", cfg.Scoring.TiebreakPoints),
		slog.Int("winning_set_threshold", cfg.Scoring.WinningSetThreshold))

	authService := services.NewAuthService(cfg.OrganizerPasswordHash, []byte(cfg.JWTSecretKey))
	rosterService := services.NewRosterService(engine, hub)
	groupService := services.NewGroupService(engine, hub)
	playoffService := services.NewPlayoffService(engine, hub)
	rankingService := services.NewRankingService(engine, hub)
	exportService := services.NewExportService(engine, uploader, logger)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	groupHandler := handlers.NewGroupHandler(groupService)
	playoffHandler := handlers.NewPlayoffHandler(playoffService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	exportHandler := handlers.NewExportHandler(exportService)
	webSocketHandler := handlers.NewWebSocketHandler(hub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		middleware.NewAuthenticator([]byte(cfg.JWTSecretKey)),
		cfg.CORSAllowedOrigins,
		authHandler,
		rosterHandler,
		groupHandler,
		playoffHandler,
		rankingHandler,
		exportHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
