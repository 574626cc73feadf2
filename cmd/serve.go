package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/jukebox/internal/realtime"
	"github.com/desertthunder/jukebox/internal/repositories"
	"github.com/desertthunder/jukebox/internal/server"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/store"
	"github.com/urfave/cli/v3"
)

// Serve starts the HTTP and WebSocket server and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd.String("config"))
	if port := cmd.Int("port"); port != 0 {
		config.Server.Port = int(port)
	}
	r.config = config

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	handler := r.buildHandler(store.New(db), config)

	httpServer := &http.Server{
		Addr:    config.Server.Addr(),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Info("server listening", "addr", config.Server.Addr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		r.logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	return nil
}

// buildHandler wires the store, gateway, broadcaster, and HTTP surface
// together. The hub is the publisher for both repositories, so every
// successful mutation reaches every connected client.
func (r *Runner) buildHandler(s *store.Store, config *shared.Config) http.Handler {
	hub := realtime.NewHub(r.logger)

	users := repositories.NewUserRepository(s.Collection(store.UsersCollection), hub, r.logger)
	songs := repositories.NewSongRepository(s.Collection(store.PlaylistCollection), hub, r.logger)

	router := server.NewBasicRouter()
	router.Handler(server.NewUserHandler(users, r.logger))
	router.Handler(server.NewPlaylistHandler(songs, r.logger))
	router.Handler(server.IndexHandler{})
	router.Handler(realtime.NewWSHandler(hub, songs, config.Realtime, config.Server.AllowedOrigins, r.logger))

	// CORS and logging wrap the whole router so preflight requests and
	// unmatched paths pass through them too.
	var handler http.Handler = router
	handler = server.RecoverMiddleware(r.logger)(handler)
	handler = server.CORSMiddleware(config.Server.AllowedOrigins)(handler)
	handler = server.LoggingMiddleware(r.logger)(handler)
	return handler
}
