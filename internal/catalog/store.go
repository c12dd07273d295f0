// Package catalog holds the in-memory game catalog and its derived views.
package catalog

import (
	"slices"
	"sync"
	"time"

	"arcade/backend/internal/models"
)

// Store owns the ordered game and category lists.
type Store struct {
	// writeMu is held across a mutation and its notification so observers
	// see changes in the same order as the list.
	writeMu sync.Mutex

	mu         sync.RWMutex
	games      []models.Game
	categories []models.GameCategory

	obsMu     sync.Mutex
	observers map[int]func(models.Change)
	nextObsID int

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for seed dates and change timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store holding copies of the given lists.
func New(games []models.Game, categories []models.GameCategory, opts ...Option) *Store {
	s := &Store{
		games:      append([]models.Game(nil), games...),
		categories: append([]models.GameCategory(nil), categories...),
		observers:  make(map[int]func(models.Change)),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded creates a store populated with the built-in catalog. Seed games
// are stamped with the store clock at construction.
func NewSeeded(opts ...Option) *Store {
	s := New(nil, SeedCategories(), opts...)
	s.games = SeedGames(s.now())
	return s
}

// Games returns every game in insertion order.
func (s *Store) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGames(s.games)
}

// Categories returns every category in seed order.
func (s *Store) Categories() []models.GameCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GameCategory{}, s.categories...)
}

// Category returns the first category with the given id.
func (s *Store) Category(id string) (models.GameCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.GameCategory{}, false
}

// FeaturedGames returns the featured games, recomputed from the current list.
func (s *Store) FeaturedGames() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Featured(s.games)
}

// GamesByCategory returns the games whose category equals categoryID exactly.
func (s *Store) GamesByCategory(categoryID string) []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return InCategory(s.games, categoryID)
}

// GameByID returns the first game with the given id.
func (s *Store) GameByID(id string) (models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.games, id); i >= 0 {
		return cloneGame(s.games[i]), true
	}
	return models.Game{}, false
}

// AddGame appends g to the catalog. Duplicate ids are accepted.
func (s *Store) AddGame(g models.Game) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	g = cloneGame(g)
	s.mu.Lock()
	s.games = append(s.games, g)
	s.mu.Unlock()

	s.notify(models.Change{Type: models.ChangeGameAdded, Game: cloneGame(g), At: s.now()})
}

// RemoveGame deletes the first game with the given id. It reports whether
// a game was removed; an unknown id leaves the catalog untouched.
func (s *Store) RemoveGame(id string) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := indexOf(s.games, id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.games[i]
	s.games = append(s.games[:i:i], s.games[i+1:]...)
	s.mu.Unlock()

	s.notify(models.Change{Type: models.ChangeGameRemoved, Game: removed, At: s.now()})
	return true
}

// Subscribe registers fn to be called after every mutation, in mutation
// order. fn may read the store but must not mutate it. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(models.Change)) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

func (s *Store) notify(change models.Change) {
	s.obsMu.Lock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	fns := make([]func(models.Change), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}
