package catalog

import (
	"sync"
	"testing"
	"time"

	"arcade/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 30, 8, 50, 10, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ids(games []models.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func twoGameStore() *Store {
	seed := SeedGames(fixedNow)[:2]
	return New(seed, SeedCategories(), WithClock(fixedClock))
}

func TestNewSeeded(t *testing.T) {
	s := NewSeeded(WithClock(fixedClock))

	assert.Equal(t, []string{"stickman-hook", "cut-the-rope", "bad-piggies", "happy-wheels"}, ids(s.Games()))
	assert.Len(t, s.Categories(), 5)
	for _, g := range s.Games() {
		assert.Equal(t, fixedNow, g.AddedDate)
	}

	g, ok := s.GameByID("bad-piggies")
	require.True(t, ok)
	assert.Equal(t, models.GameTypeFlash, g.Launch.Type)
}

func TestStore_FeaturedGames(t *testing.T) {
	s := NewSeeded(WithClock(fixedClock))
	assert.Equal(t, []string{"stickman-hook", "bad-piggies", "happy-wheels"}, ids(s.FeaturedGames()))

	s.AddGame(models.Game{ID: "new-hit", Featured: true})
	s.AddGame(models.Game{ID: "filler", Featured: false})
	assert.Equal(t, []string{"stickman-hook", "bad-piggies", "happy-wheels", "new-hit"}, ids(s.FeaturedGames()))

	s.RemoveGame("bad-piggies")
	assert.Equal(t, []string{"stickman-hook", "happy-wheels", "new-hit"}, ids(s.FeaturedGames()))
}

func TestStore_GamesByCategory(t *testing.T) {
	s := NewSeeded(WithClock(fixedClock))

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "arcade keeps order", category: "arcade", want: []string{"stickman-hook", "bad-piggies", "happy-wheels"}},
		{name: "single match", category: "puzzle", want: []string{"cut-the-rope"}},
		{name: "known category without games", category: "sports", want: []string{}},
		{name: "case sensitive", category: "Arcade", want: []string{}},
		{name: "unknown", category: "nope", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.GamesByCategory(tt.category)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestStore_GameByID(t *testing.T) {
	s := twoGameStore()

	g, ok := s.GameByID("cut-the-rope")
	require.True(t, ok)
	assert.Equal(t, "Cut the Rope", g.Title)

	_, ok = s.GameByID("no-such-id")
	assert.False(t, ok)

	s.AddGame(models.Game{ID: "cut-the-rope", Title: "Duplicate"})
	g, _ = s.GameByID("cut-the-rope")
	assert.Equal(t, "Cut the Rope", g.Title, "first match wins")
}

func TestStore_AddGame(t *testing.T) {
	s := twoGameStore()
	before := len(s.Games())

	dup := models.Game{ID: "stickman-hook", Title: "Another Stickman"}
	s.AddGame(dup)

	games := s.Games()
	require.Len(t, games, before+1)
	assert.Equal(t, dup.Title, games[len(games)-1].Title)
	assert.Equal(t, []string{"stickman-hook", "cut-the-rope", "stickman-hook"}, ids(games))
}

func TestStore_RemoveGame(t *testing.T) {
	s := twoGameStore()
	require.Equal(t, []string{"stickman-hook"}, ids(s.FeaturedGames()))

	assert.True(t, s.RemoveGame("cut-the-rope"))
	assert.Equal(t, []string{"stickman-hook"}, ids(s.Games()))

	assert.False(t, s.RemoveGame("no-such-id"))
	assert.Equal(t, []string{"stickman-hook"}, ids(s.Games()))
}

func TestStore_RemoveGameFirstMatchOnly(t *testing.T) {
	s := New([]models.Game{
		{ID: "a", Title: "first a"},
		{ID: "b"},
		{ID: "a", Title: "second a"},
		{ID: "c"},
	}, nil)

	s.RemoveGame("a")

	games := s.Games()
	assert.Equal(t, []string{"b", "a", "c"}, ids(games))
	assert.Equal(t, "second a", games[1].Title)
}

func TestStore_ReadersGetCopies(t *testing.T) {
	s := twoGameStore()

	games := s.Games()
	games[0].Title = "mutated"
	games[0].Tags[0] = "mutated"

	g, _ := s.GameByID("stickman-hook")
	assert.Equal(t, "Stickman Hook", g.Title)
	assert.Equal(t, []string{"action", "skill"}, g.Tags)

	cats := s.Categories()
	cats[0].Name = "mutated"
	c, ok := s.Category("arcade")
	require.True(t, ok)
	assert.Equal(t, "Arcade", c.Name)
}

func TestStore_Subscribe(t *testing.T) {
	s := twoGameStore()

	var changes []models.Change
	unsubscribe := s.Subscribe(func(c models.Change) { changes = append(changes, c) })

	s.AddGame(models.Game{ID: "added"})
	s.RemoveGame("no-such-id")
	s.RemoveGame("cut-the-rope")

	require.Len(t, changes, 2)
	assert.Equal(t, models.ChangeGameAdded, changes[0].Type)
	assert.Equal(t, "added", changes[0].Game.ID)
	assert.Equal(t, models.ChangeGameRemoved, changes[1].Type)
	assert.Equal(t, "cut-the-rope", changes[1].Game.ID)
	assert.Equal(t, fixedNow, changes[1].At)

	unsubscribe()
	unsubscribe()
	s.AddGame(models.Game{ID: "ignored"})
	assert.Len(t, changes, 2)
}

func TestStore_ObserverCanReadStore(t *testing.T) {
	s := twoGameStore()

	var seen int
	s.Subscribe(func(models.Change) { seen = len(s.Games()) })
	s.AddGame(models.Game{ID: "x"})

	assert.Equal(t, 3, seen)
}

func TestStore_ObserversSeeMutationOrder(t *testing.T) {
	tests := []struct {
		name   string
		second func(s *Store)
		want   []string
	}{
		{
			name:   "add during delivery",
			second: func(s *Store) { s.AddGame(models.Game{ID: "b"}) },
			want:   []string{"game_added:a", "game_added:b"},
		},
		{
			name:   "remove during delivery",
			second: func(s *Store) { s.RemoveGame("a") },
			want:   []string{"game_added:a", "game_removed:a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, nil)

			entered := make(chan struct{})
			release := make(chan struct{})
			var mu sync.Mutex
			var seen []string
			s.Subscribe(func(c models.Change) {
				if c.Type == models.ChangeGameAdded && c.Game.ID == "a" {
					close(entered)
					<-release
				}
				mu.Lock()
				seen = append(seen, string(c.Type)+":"+c.Game.ID)
				mu.Unlock()
			})

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				s.AddGame(models.Game{ID: "a"})
			}()
			<-entered
			go func() {
				defer wg.Done()
				tt.second(s)
			}()

			// Let the second mutation run as far as it can before releasing the first.
			time.Sleep(30 * time.Millisecond)
			close(release)
			wg.Wait()

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, tt.want, seen)
		})
	}
}
