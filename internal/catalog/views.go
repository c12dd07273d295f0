package catalog

import (
	"slices"
	"strings"

	"arcade/backend/internal/models"
)

// Featured returns the subsequence of games with the featured flag set.
func Featured(games []models.Game) []models.Game {
	return filter(games, func(g models.Game) bool { return g.Featured })
}

// InCategory returns the subsequence of games whose category equals id.
// The comparison is case-sensitive.
func InCategory(games []models.Game, id string) []models.Game {
	return filter(games, func(g models.Game) bool { return g.Category == id })
}

// WithTag returns the games carrying tag.
func WithTag(games []models.Game, tag string) []models.Game {
	return filter(games, func(g models.Game) bool { return g.HasTag(tag) })
}

// MatchingTitle returns the games whose title contains q, ignoring case.
func MatchingTitle(games []models.Game, q string) []models.Game {
	q = strings.ToLower(q)
	return filter(games, func(g models.Game) bool {
		return strings.Contains(strings.ToLower(g.Title), q)
	})
}

func filter(games []models.Game, keep func(models.Game) bool) []models.Game {
	out := []models.Game{}
	for _, g := range games {
		if keep(g) {
			out = append(out, cloneGame(g))
		}
	}
	return out
}

func indexOf(games []models.Game, id string) int {
	return slices.IndexFunc(games, func(g models.Game) bool { return g.ID == id })
}

func cloneGame(g models.Game) models.Game {
	g.Tags = slices.Clone(g.Tags)
	return g
}

func cloneGames(games []models.Game) []models.Game {
	out := make([]models.Game, len(games))
	for i, g := range games {
		out[i] = cloneGame(g)
	}
	return out
}
