package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dfryer1193/pawfeed/feed/application"
	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/dfryer1193/pawfeed/feed/notify"
	"github.com/dfryer1193/pawfeed/feed/persistence"
	"github.com/dfryer1193/pawfeed/feed/seed"
	"github.com/dfryer1193/pawfeed/internal/middleware"
	"github.com/dfryer1193/pawfeed/internal/rest"
	"github.com/dfryer1193/pawfeed/shared/config"
	gh "github.com/dfryer1193/pawfeed/shared/github"
	"github.com/dfryer1193/pawfeed/shared/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v75/github"
	"github.com/rs/zerolog/log"
)

const (
	shutdownTimeout = 5 * time.Second
	seedTimeout     = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	store := application.NewPostStore(
		persistence.NewPostRepository(),
		application.WithNotifier(notify.NewLogNotifier(log.Logger)),
		application.WithTrendingLimit(cfg.TrendingLimit),
	)
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to gracefully close post store")
		}
	}()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), seedTimeout)
	if _, err := store.Seed(seedCtx, seedSource(cfg)); err != nil {
		log.Error().Err(err).Msg("Failed to seed post store, starting empty")
	}
	cancelSeed()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))
	r.Use(middleware.Identity(domain.Identity{
		ID:     cfg.UserID,
		Name:   cfg.UserName,
		Avatar: cfg.UserAvatar,
	}))
	rest.NewApi(r, rest.NewHandler(store, application.NewMarkdownRenderer()))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info().Msg("Starting server on port :" + fmt.Sprint(cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown server")
		return
	}

	log.Info().Msg("Server stopped")
}

// seedSource picks GitHub, then a local file, then the built-in demo posts.
func seedSource(cfg *config.Config) domain.SeedSource {
	switch {
	case cfg.UsesGithubSeed():
		log.Info().Str("repo", cfg.SeedGithubOwner+"/"+cfg.SeedGithubRepo).Str("path", cfg.SeedGithubPath).Msg("Seeding from GitHub")
		return gh.NewGithubSeedRepository(github.NewClient(nil), cfg.SeedGithubOwner, cfg.SeedGithubRepo, cfg.SeedGithubPath, cfg.SeedGithubRef)
	case cfg.SeedFile != "":
		log.Info().Str("path", cfg.SeedFile).Msg("Seeding from file")
		return seed.NewFileSource(cfg.SeedFile)
	default:
		return seed.NewDemoSource()
	}
}
