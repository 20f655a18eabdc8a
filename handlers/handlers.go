package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/icco/gamelog/lib/library"
	"github.com/icco/gamelog/lib/recommend"
	"github.com/icco/gamelog/lib/stats"
	"github.com/icco/gamelog/lib/store"
	"github.com/icco/gamelog/lib/types"
	"github.com/icco/gamelog/lib/validation"
	"github.com/icco/gamelog/models"
)

// recentlyAddedCount is how many games the dashboard lists as new.
const recentlyAddedCount = 4

// Library is the collection the handlers read and update.
type Library interface {
	Games(ctx context.Context) ([]models.Game, error)
	Game(ctx context.Context, id int64) (models.Game, error)
	SetStatus(ctx context.Context, id int64, status models.Status) ([]models.Game, models.Game, error)
	Wishlist(ctx context.Context, candidate models.Game) ([]models.Game, error)
}

// Pitcher decorates recommendations with generated pitches.
type Pitcher interface {
	Pitch(ctx context.Context, games []models.Game, recs []models.Recommendation) ([]models.Recommendation, error)
}

type gamesResponse struct {
	Games  []models.Game  `json:"games"`
	Groups library.Groups `json:"groups"`
	Genres []string       `json:"genres"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	Game    models.Game `json:"game"`
	Message string      `json:"message"`
}

type recommendationsResponse struct {
	// Eligible is false until the user has finished a game; clients hide
	// recommendations until then.
	Eligible        bool                    `json:"eligible"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

type dashboardResponse struct {
	Stats         types.StatisticsSummary `json:"stats"`
	RecentlyAdded []models.Game           `json:"recentlyAdded"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", slog.Any("error", err))
	}
}

// writeStoreError maps a store failure to a response.
func writeStoreError(w http.ResponseWriter, req *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		validation.WriteError(w, err, http.StatusNotFound)
		return
	}
	slog.ErrorContext(req.Context(), "Store operation failed", slog.Any("error", err))
	validation.WriteError(w, errors.New("internal server error"), http.StatusInternalServerError)
}

// HandleGames lists the library, optionally narrowed by the q, genre and
// status query parameters.
func HandleGames(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		games, err := lib.Games(req.Context())
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		query := req.URL.Query()
		filtered := library.Filter(games, library.Query{
			Search: query.Get("q"),
			Genre:  query.Get("genre"),
		})

		if query.Has("status") {
			status, err := validation.ValidateStatus(query.Get("status"))
			if err != nil {
				validation.WriteError(w, err, http.StatusBadRequest)
				return
			}
			byStatus := make([]models.Game, 0, len(filtered))
			for _, g := range filtered {
				if g.Status == status {
					byStatus = append(byStatus, g)
				}
			}
			filtered = byStatus
		}

		writeJSON(w, gamesResponse{
			Games:  filtered,
			Groups: library.Group(filtered),
			Genres: library.Genres(games),
		}, http.StatusOK)
	}
}

// HandleGame returns a single game by id.
func HandleGame(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := validation.ValidateID(chi.URLParam(req, "id"))
		if err != nil {
			validation.WriteError(w, err, http.StatusBadRequest)
			return
		}

		game, err := lib.Game(req.Context(), id)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		writeJSON(w, game, http.StatusOK)
	}
}

// HandleSetStatus replaces the status of one game.
func HandleSetStatus(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := validation.ValidateID(chi.URLParam(req, "id"))
		if err != nil {
			validation.WriteError(w, err, http.StatusBadRequest)
			return
		}

		var body statusRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			validation.WriteError(w, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
			return
		}

		status, err := validation.ValidateStatus(body.Status)
		if err != nil {
			validation.WriteError(w, err, http.StatusBadRequest)
			return
		}

		_, game, err := lib.SetStatus(req.Context(), id, status)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		writeJSON(w, statusResponse{
			Game:    game,
			Message: library.StatusMessage(game, status),
		}, http.StatusOK)
	}
}

// HandleStats returns the statistics summary for the library.
func HandleStats(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		games, err := lib.Games(req.Context())
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		writeJSON(w, stats.Compute(games), http.StatusOK)
	}
}

// HandleRecommendations suggests games from pool. With ?pitch=1 and a
// configured pitcher, each recommendation also carries a generated pitch; a
// failing pitcher is logged and the plain recommendations are served.
func HandleRecommendations(lib Library, pool []models.Game, pitcher Pitcher) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		games, err := lib.Games(req.Context())
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		recs := recommend.Compute(games, pool)

		if pitcher != nil && req.URL.Query().Get("pitch") != "" {
			pitched, err := pitcher.Pitch(req.Context(), games, recs)
			if err != nil {
				slog.WarnContext(req.Context(), "Failed to generate pitches", slog.Any("error", err))
			} else {
				recs = pitched
			}
		}

		writeJSON(w, recommendationsResponse{
			Eligible:        len(library.Group(games).Finished) > 0,
			Recommendations: recs,
		}, http.StatusOK)
	}
}

// HandleWishlistRecommendation adds a candidate from pool to the wishlist.
func HandleWishlistRecommendation(lib Library, pool []models.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := validation.ValidateID(chi.URLParam(req, "id"))
		if err != nil {
			validation.WriteError(w, err, http.StatusBadRequest)
			return
		}

		candidate, ok := library.Find(pool, id)
		if !ok {
			validation.WriteError(w, fmt.Errorf("%w: %d", store.ErrNotFound, id), http.StatusNotFound)
			return
		}

		games, err := lib.Wishlist(req.Context(), candidate)
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		game, _ := library.Find(games, id)
		writeJSON(w, statusResponse{
			Game:    game,
			Message: library.StatusMessage(game, models.StatusWishlisted),
		}, http.StatusOK)
	}
}

// HandleDashboard returns the summary shown on the landing page.
func HandleDashboard(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		games, err := lib.Games(req.Context())
		if err != nil {
			writeStoreError(w, req, err)
			return
		}

		writeJSON(w, dashboardResponse{
			Stats:         stats.Compute(games),
			RecentlyAdded: library.RecentlyAdded(games, recentlyAddedCount),
		}, http.StatusOK)
	}
}
