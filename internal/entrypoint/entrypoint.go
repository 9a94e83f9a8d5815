package entrypoint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/demo"
	http_controllers "github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/scheduler"
	"github.com/mrlokans/catalog/internal/services"
	"github.com/mrlokans/catalog/internal/session"
	"github.com/mrlokans/catalog/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown")
	}

	log.Info().Msg("Server exiting")
}

func Run(cfg *config.Config, version string) {
	logging.Setup(cfg.Global.Environment, cfg.Global.LogLevel)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Str("version", version).
		Str("environment", cfg.Global.Environment).
		Msg("Starting catalog")

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	authorService := services.NewAuthorService(authorRepo, bookRepo)
	bookService := services.NewBookService(bookRepo, authorRepo)

	routerCfg := http_controllers.RouterConfig{
		Authors:     authorService,
		Books:       bookService,
		Database:    db,
		APIPrefix:   cfg.HTTP.APIPrefix,
		Development: cfg.IsDevelopment(),
		UIEnabled:   cfg.UI.Enabled,
		Version:     version,
	}

	if cfg.UI.Enabled {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get SQL DB for sessions")
		}
		sessionManager, err := session.NewManager(sqlDB, cfg.Session)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize session manager")
		}

		secret := cfg.Session.Secret
		if secret == "" {
			if secret, err = generateSecret(); err != nil {
				log.Fatal().Err(err).Msg("Failed to generate session secret")
			}
			log.Info().Msg("Generated session secret (set SESSION_SECRET to persist)")
		}

		routerCfg.SessionManager = sessionManager
		routerCfg.CSRFKey = session.CSRFKey(secret)
		routerCfg.SecureCookies = cfg.Session.SecureCookies
	}

	var onShutdown ShutdownFunc
	if cfg.Demo.Enabled {
		log.Info().Str("schedule", cfg.Demo.ResetSchedule).Msg("Demo mode enabled - write operations will be blocked")
		routerCfg.DemoMiddleware = demo.NewMiddleware(true, cfg.HTTP.APIPrefix)

		taskClient, resetScheduler, cancel := startDemoReset(cfg, db)
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing task client")
			}
		}()

		onShutdown = func(ctx context.Context) {
			resetScheduler.Stop()
			taskClient.Stop(ctx)
			cancel()
		}
	}

	router := http_controllers.NewRouter(routerCfg)
	Serve(router, cfg, onShutdown)
}

// startDemoReset starts the task workers and the cron schedule that keeps
// reseeding the demo catalog. The catalog is reset once right away.
func startDemoReset(cfg *config.Config, db *database.Database) (*tasks.Client, *scheduler.DemoResetScheduler, context.CancelFunc) {
	taskClient, err := tasks.NewClient(cfg.Database.Path, tasks.FromAppConfig(cfg.Tasks))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize task queue")
	}
	taskClient.Register(tasks.NewResetCatalogQueue(db.DB))

	ctx, cancel := context.WithCancel(context.Background())
	go taskClient.Start(ctx)

	resetScheduler := scheduler.NewDemoResetScheduler(taskClient, cfg.Demo.ResetSchedule)
	if err := resetScheduler.Start(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to start demo reset scheduler")
	}
	if err := resetScheduler.RunNow(); err != nil {
		log.Error().Err(err).Msg("Initial demo reset failed")
	}

	return taskClient, resetScheduler, cancel
}

func generateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
