package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dfalcao/linkbio/internal/config"
	"github.com/dfalcao/linkbio/internal/database"
	postgresrepo "github.com/dfalcao/linkbio/internal/repository/postgres"
	"github.com/dfalcao/linkbio/internal/service"
	"github.com/dfalcao/linkbio/internal/transport/http/handlers"
	"github.com/dfalcao/linkbio/internal/transport/http/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	linkRepo := postgresrepo.NewLinkRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	profileService := service.NewProfileService(profileRepo, linkRepo)
	linkService := service.NewLinkService(linkRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	linkHandler := handlers.NewLinkHandler(linkService)

	mux := handlers.NewRouter(cfg.JWTSecret, authHandler, profileHandler, linkHandler)

	handler := middleware.CORS(middleware.Logging(logger)(mux))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
