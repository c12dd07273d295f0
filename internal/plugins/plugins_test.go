package plugins

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arcade/backend/internal/config"
	"arcade/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		GinMode:           gin.TestMode,
		JWTSecret:         "test-secret",
		AdminPasswordHash: string(hash),
	}
}

func request(t *testing.T, r http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterPlugins(t *testing.T) {
	app := NewApp(testConfig(t))
	require.NoError(t, RegisterPlugins(app))
	t.Cleanup(func() { assert.NoError(t, app.Close()) })

	require.NotNil(t, app.Store)
	require.NotNil(t, app.Hub)
	require.NotNil(t, app.Router)
	assert.Nil(t, app.Mirror)
	assert.Len(t, app.Store.Games(), 4)

	w := request(t, app.Router, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterPluginNeedsStore(t *testing.T) {
	app := NewApp(testConfig(t))

	err := app.Use(RouterPlugin{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoStore))
	assert.Contains(t, err.Error(), "router")
}

func TestRouterPluginRejectsUnknownMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.GinMode = "verbose"
	app := NewApp(cfg)

	require.NoError(t, app.Use(StatePlugin{}))
	assert.Error(t, app.Use(RouterPlugin{}))
}

func TestAdminFlow(t *testing.T) {
	app := NewApp(testConfig(t))
	require.NoError(t, RegisterPlugins(app))
	t.Cleanup(func() { _ = app.Close() })

	w := request(t, app.Router, http.MethodPost, "/api/v1/admin/games", "", `{"id":"x"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(t, app.Router, http.MethodPost, "/api/v1/auth/login", "", `{"password":"letmein"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))

	// Remove the non-featured seed game, then a missing one.
	w = request(t, app.Router, http.MethodDelete, "/api/v1/admin/games/cut-the-rope", tok.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = request(t, app.Router, http.MethodDelete, "/api/v1/admin/games/no-such-id", tok.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var ids []string
	for _, g := range app.Store.Games() {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"stickman-hook", "bad-piggies", "happy-wheels"}, ids)

	w = request(t, app.Router, http.MethodPost, "/api/v1/admin/games", tok.Token,
		`{"id":"stickman-hook","title":"Stickman Hook 2","gameType":"html5","path":"/games/stickman2/index.html","featured":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(t, app.Router, http.MethodGet, "/api/v1/games/featured", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var featured []models.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	require.Len(t, featured, 4)
	assert.Equal(t, models.LocalFile("/games/stickman2/index.html"), featured[3].Launch)
}

func TestStoreChangesReachHub(t *testing.T) {
	app := NewApp(testConfig(t))
	require.NoError(t, app.Use(StatePlugin{}))
	t.Cleanup(func() { _ = app.Close() })

	client := make(chan []byte, 1)
	app.Hub.Subscribe(client)

	app.Store.AddGame(models.Game{ID: "fresh"})

	var ev struct {
		Type    string        `json:"type"`
		Payload models.Change `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(<-client, &ev))
	assert.Equal(t, "game_added", ev.Type)
	assert.Equal(t, "fresh", ev.Payload.Game.ID)
}

func TestAppClose(t *testing.T) {
	app := NewApp(nil)
	var order []int
	app.OnClose(func() error { order = append(order, 1); return nil })
	app.OnClose(func() error { order = append(order, 2); return errors.New("boom") })

	err := app.Close()
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []int{2, 1}, order)
	assert.NoError(t, app.Close())
}
