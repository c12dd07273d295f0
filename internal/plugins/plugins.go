// Package plugins wires the catalog store and the HTTP router into an App.
package plugins

import (
	"errors"
	"fmt"
	"log"

	"arcade/backend/internal/catalog"
	"arcade/backend/internal/config"
	"arcade/backend/internal/database"
	"arcade/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// ErrNoStore is returned when the router is installed before the store.
var ErrNoStore = errors.New("catalog store is not installed")

// Plugin attaches a facility to an App.
type Plugin interface {
	Name() string
	Install(app *App) error
}

// App is the application handle. It owns the store and the router and is
// the single place they are created and torn down.
type App struct {
	Config *config.Config
	Store  *catalog.Store
	Hub    *hub.Hub
	Router *gin.Engine
	Mirror *database.Mirror

	closers []func() error
}

// NewApp creates an empty application handle.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &App{Config: cfg}
}

// Use installs a plugin.
func (a *App) Use(p Plugin) error {
	if err := p.Install(a); err != nil {
		return fmt.Errorf("install %s plugin: %w", p.Name(), err)
	}
	return nil
}

// OnClose registers a teardown func, run in reverse order by Close.
func (a *App) OnClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close tears down everything the plugins set up.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// RegisterPlugins installs the state plugin then the router plugin.
func RegisterPlugins(app *App) error {
	if err := app.Use(StatePlugin{}); err != nil {
		return err
	}
	if err := app.Use(RouterPlugin{}); err != nil {
		return err
	}
	log.Println("Plugins registered.")
	return nil
}
