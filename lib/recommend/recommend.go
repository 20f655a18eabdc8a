// Package recommend suggests games from a candidate pool based on what the
// user has already finished.
package recommend

import (
	"fmt"

	"github.com/icco/gamelog/lib/stats"
	"github.com/icco/gamelog/models"
)

// highlyRated is the rating a candidate must exceed to be suggested on
// reviews alone.
const highlyRated = 9.0

// profile is what the recommender learns from the user's finished games.
type profile struct {
	genres    *stats.Tally
	platforms map[string]bool
	seen      map[int64]bool
}

func newProfile(games []models.Game) profile {
	p := profile{
		genres:    stats.NewTally(),
		platforms: make(map[string]bool),
		seen:      make(map[int64]bool),
	}
	for _, g := range games {
		if g.Status.Classified() {
			p.seen[g.ID] = true
		}
		if g.Status != models.StatusFinished {
			continue
		}
		p.genres.Add(g.Genre)
		if g.Platform != nil && *g.Platform != "" {
			p.platforms[*g.Platform] = true
		}
	}
	return p
}

// Compute returns a recommendation for every candidate in pool that the user
// has not already finished, wishlisted or disliked, in pool order. Neither
// argument is modified.
func Compute(games []models.Game, pool []models.Game) []models.Recommendation {
	p := newProfile(games)

	recs := make([]models.Recommendation, 0, len(pool))
	for _, candidate := range pool {
		if p.seen[candidate.ID] {
			continue
		}
		recs = append(recs, models.Recommendation{
			Game:   candidate,
			Reason: p.reason(candidate),
		})
	}
	return recs
}

// reason picks the first rule that matches the candidate.
func (p profile) reason(g models.Game) string {
	switch {
	case p.genres.Has(g.Genre):
		return fmt.Sprintf("Based on your interest in %s games.", g.Genre)
	case g.Rating != nil && *g.Rating > highlyRated:
		return fmt.Sprintf("Highly rated %s game that's getting great reviews.", g.Genre)
	case g.Platform != nil && p.platforms[*g.Platform]:
		return fmt.Sprintf("Available on %s, which you already own.", *g.Platform)
	default:
		return "A recent release that matches your general gaming interests."
	}
}
