// Package library holds the operations the service performs on a game
// collection. Every function treats its input as an immutable snapshot and
// returns freshly allocated results.
package library

import (
	"fmt"
	"sort"
	"strings"

	"github.com/icco/gamelog/models"
)

// SetStatus returns a copy of games in which only the game with the given id
// has its status replaced. Order and every other record are preserved. The
// second result is false when no game has that id; the copy is then
// identical to the input.
func SetStatus(games []models.Game, id int64, status models.Status) ([]models.Game, bool) {
	out := make([]models.Game, len(games))
	copy(out, games)

	found := false
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			found = true
		}
	}
	return out, found
}

// Wishlist returns a copy of games with candidate marked Wishlisted. A
// candidate already present keeps its position and only its status changes;
// otherwise it is appended.
func Wishlist(games []models.Game, candidate models.Game) []models.Game {
	if out, ok := SetStatus(games, candidate.ID, models.StatusWishlisted); ok {
		return out
	}
	candidate.Status = models.StatusWishlisted
	candidate.PlayTime = nil
	out := make([]models.Game, len(games), len(games)+1)
	copy(out, games)
	return append(out, candidate)
}

// Find looks up a game by id.
func Find(games []models.Game, id int64) (models.Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}

// Query narrows a collection for display.
type Query struct {
	// Search matches case-insensitively against title or genre.
	Search string
	// Genre, when set, must equal the game's genre exactly.
	Genre string
}

// Filter returns the games matching q, in input order.
func Filter(games []models.Game, q Query) []models.Game {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Title), search) &&
			!strings.Contains(strings.ToLower(g.Genre), search) {
			continue
		}
		if q.Genre != "" && g.Genre != q.Genre {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Groups buckets a collection by status.
type Groups struct {
	Untracked  []models.Game `json:"untracked"`
	Finished   []models.Game `json:"finished"`
	Wishlisted []models.Game `json:"wishlist"`
	Disliked   []models.Game `json:"disliked"`
}

// Group splits games into their status buckets, keeping input order.
func Group(games []models.Game) Groups {
	g := Groups{
		Untracked:  []models.Game{},
		Finished:   []models.Game{},
		Wishlisted: []models.Game{},
		Disliked:   []models.Game{},
	}
	for _, game := range games {
		switch game.Status {
		case models.StatusFinished:
			g.Finished = append(g.Finished, game)
		case models.StatusWishlisted:
			g.Wishlisted = append(g.Wishlisted, game)
		case models.StatusDisliked:
			g.Disliked = append(g.Disliked, game)
		default:
			g.Untracked = append(g.Untracked, game)
		}
	}
	return g
}

// Genres returns the distinct genres of games in first-seen order.
func Genres(games []models.Game) []string {
	seen := make(map[string]bool, len(games))
	out := []string{}
	for _, g := range games {
		if !seen[g.Genre] {
			seen[g.Genre] = true
			out = append(out, g.Genre)
		}
	}
	return out
}

// RecentlyAdded returns up to n games with the highest ids, newest first.
func RecentlyAdded(games []models.Game, n int) []models.Game {
	out := make([]models.Game, len(games))
	copy(out, games)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// StatusMessage is the confirmation shown after a status change.
func StatusMessage(game models.Game, status models.Status) string {
	switch status {
	case models.StatusFinished:
		return fmt.Sprintf("Added %q to your finished games", game.Title)
	case models.StatusWishlisted:
		return fmt.Sprintf("Added %q to your wishlist", game.Title)
	case models.StatusDisliked:
		return fmt.Sprintf("Marked %q as not interested", game.Title)
	default:
		return fmt.Sprintf("Removed %q from your lists", game.Title)
	}
}
