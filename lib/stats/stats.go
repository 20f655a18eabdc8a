// Package stats computes summary statistics over a game collection.
package stats

import (
	"github.com/icco/gamelog/lib/types"
	"github.com/icco/gamelog/models"
)

// None is reported as the favorite genre or platform when nothing is finished.
const None = "None"

// Compute builds a StatisticsSummary for games. It never modifies its input
// and is total: an empty collection yields zero counts and "None" favorites.
func Compute(games []models.Game) types.StatisticsSummary {
	var (
		summary   = types.StatisticsSummary{TotalGames: len(games)}
		genres    = NewTally()
		platforms = NewTally()
		ratingSum float64
		rated     int
	)

	for _, g := range games {
		switch g.Status {
		case models.StatusFinished:
			summary.FinishedCount++
		case models.StatusWishlisted:
			summary.WishlistCount++
			continue
		case models.StatusDisliked:
			summary.DislikedCount++
			continue
		default:
			summary.UntrackedCount++
			continue
		}

		if g.PlayTime != nil {
			summary.TotalPlayTime += *g.PlayTime
		}
		genres.Add(g.Genre)
		if g.Platform != nil && *g.Platform != "" {
			platforms.Add(*g.Platform)
		}
		if g.Rating != nil {
			ratingSum += *g.Rating
			rated++
		}
	}

	summary.FavoriteGenre = favorite(genres)
	summary.FavoritePlatform = favorite(platforms)

	// A collection with nothing finished or wishlisted has a rate of 0.
	if denom := summary.FinishedCount + summary.WishlistCount; denom > 0 {
		summary.CompletionRate = Percent(summary.FinishedCount, denom)
	}

	summary.AverageRating = RoundTo(ratingSum/float64(max(1, rated)), 1)
	summary.GenreBreakdown = genres.Breakdown(summary.FinishedCount)
	summary.PlatformBreakdown = platforms.Breakdown(summary.FinishedCount)

	return summary
}

func favorite(t *Tally) string {
	if k, ok := t.Mode(); ok {
		return k
	}
	return None
}
