package plugins

import (
	"arcade/backend/internal/catalog"
	"arcade/backend/internal/database"
	"arcade/backend/internal/hub"
	"arcade/backend/internal/models"
)

// StatePlugin creates the catalog store and its change fan-out. When a
// database URL is configured the catalog is loaded from, and mirrored to,
// the database.
type StatePlugin struct {
	Options []catalog.Option
}

func (StatePlugin) Name() string { return "state" }

func (p StatePlugin) Install(app *App) error {
	if app.Config.DatabaseURL != "" && app.Mirror == nil {
		db, err := database.Connect(app.Config.DatabaseURL)
		if err != nil {
			return err
		}
		app.Mirror = database.NewMirror(db)
		app.OnClose(app.Mirror.Close)
	}

	if app.Mirror != nil {
		seed := catalog.NewSeeded(p.Options...)
		games, categories, err := app.Mirror.Load(seed.Games(), seed.Categories())
		if err != nil {
			return err
		}
		app.Store = catalog.New(games, categories, p.Options...)
		app.Store.Subscribe(app.Mirror.Observe)
	} else {
		app.Store = catalog.NewSeeded(p.Options...)
	}

	// The hub is closed by the HTTP server on shutdown, before connections drain.
	if app.Hub == nil {
		app.Hub = hub.NewHub()
	}
	h := app.Hub
	app.Store.Subscribe(func(change models.Change) {
		h.Broadcast(hub.Event{Type: string(change.Type), Payload: change})
	})
	return nil
}
