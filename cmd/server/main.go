package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"arcade/backend/internal/config"
	"arcade/backend/internal/plugins"
)

const shutdownTimeout = 5 * time.Second

func init() {
	config.LoadConfig()
}

// @title           Arcade API
// @version         1.0
// @description     Catalog of playable HTML5, iframe and Flash games.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	app := plugins.NewApp(config.AppConfig)
	if err := plugins.RegisterPlugins(app); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ln, err := net.Listen("tcp", ":"+config.AppConfig.Port)
	if err != nil {
		_ = app.Close()
		log.Fatalf("Failed to listen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Server is running on :%s\n", config.AppConfig.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", config.AppConfig.Port)
	if err := serve(ctx, app, ln); err != nil {
		log.Fatal(err)
	}
}

// serve runs the app's router on ln until ctx is done, then drains in-flight
// requests and only afterwards tears the app down.
func serve(ctx context.Context, app *plugins.App, ln net.Listener) error {
	srv := &http.Server{Handler: app.Router}
	// Event streams only end when their clients go away, so drop them first.
	srv.RegisterOnShutdown(func() {
		log.Printf("Closing %d event streams", app.Hub.Len())
		app.Hub.Close()
	})

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	select {
	case err := <-serveErr:
		return errors.Join(err, app.Close())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := srv.Shutdown(shutdownCtx)
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		shutdownErr = errors.Join(shutdownErr, err)
	}
	return errors.Join(shutdownErr, app.Close())
}
