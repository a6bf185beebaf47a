package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/handlers"
	"github.com/radiostream/server/internal/logging"
	"github.com/radiostream/server/internal/middleware"
	"github.com/radiostream/server/internal/services"
)

// runServer loads the station configuration, wires the services and runs the
// HTTP server with graceful shutdown.
func runServer() error {
	credentials := services.NewCredentialService()

	store := config.NewStore(configPath, credentials)
	cfg, err := store.Load()
	if err != nil {
		if errors.Is(err, config.ErrConfigCorrupt) {
			logging.Log.WithError(err).Error("Configuration file is unreadable; fix or delete it and restart")
		}
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	assets, err := services.NewAssetService(staticDir)
	if err != nil {
		return fmt.Errorf("failed to prepare static directory: %w", err)
	}

	sessions := services.NewSessionService(cfg.SecretKey)

	r := setupRouter(store, assets, credentials, sessions)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.WithFields(logrus.Fields{
			"addr":          addr,
			"station_label": cfg.StationLabel,
			"config":        store.Path(),
			"static_dir":    assets.StaticDir(),
		}).Info("RadioStream server starting")
		logging.Log.Infof("Admin console at http://localhost%s/admin, embeddable player at /embed", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}

// setupRouter builds the route table. Admin routes sit behind the session
// gate, everything else is public.
func setupRouter(
	store *config.Store,
	assets *services.AssetService,
	credentials *services.CredentialService,
	sessions *services.SessionService,
) chi.Router {
	player := handlers.NewPlayerHandler(store, assets)
	auth := handlers.NewAuthHandler(store, credentials, sessions)
	admin := handlers.NewAdminHandler(store, assets, credentials, sessions)
	static := handlers.NewStaticHandler(assets)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", player.Page)
	r.Get("/embed", player.Embed)
	r.Get("/static/{filename}", static.Serve)

	r.Get("/login", auth.LoginPage)
	r.Post("/login", auth.Login)
	r.Get("/logout", auth.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(store, sessions))
		r.Get("/admin", admin.Console)
		r.Post("/admin", admin.Update)
	})

	return r
}
