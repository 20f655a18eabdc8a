package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icco/gamelog/handlers"
	"github.com/icco/gamelog/lib/library"
	"github.com/icco/gamelog/lib/recommend"
	"github.com/icco/gamelog/lib/store"
	"github.com/icco/gamelog/lib/types"
	"github.com/icco/gamelog/models"
)

type stubPitcher struct {
	err   error
	calls int
}

func (p *stubPitcher) Pitch(_ context.Context, _ []models.Game, recs []models.Recommendation) ([]models.Recommendation, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	out := make([]models.Recommendation, len(recs))
	copy(out, recs)
	for i := range out {
		out[i].Pitch = "Play " + out[i].Game.Title
	}
	return out, nil
}

type failingLibrary struct{}

var errBroken = errors.New("disk on fire")

func (failingLibrary) Games(context.Context) ([]models.Game, error) { return nil, errBroken }
func (failingLibrary) Game(context.Context, int64) (models.Game, error) {
	return models.Game{}, errBroken
}
func (failingLibrary) SetStatus(context.Context, int64, models.Status) ([]models.Game, models.Game, error) {
	return nil, models.Game{}, errBroken
}
func (failingLibrary) Wishlist(context.Context, models.Game) ([]models.Game, error) {
	return nil, errBroken
}

func newStore(t *testing.T, games []models.Game) *store.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.Open(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", name), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Seed(context.Background(), games))
	return st
}

func newRouter(lib handlers.Library, pitcher handlers.Pitcher) *chi.Mux {
	pool := recommend.DefaultPool()
	r := chi.NewRouter()
	r.Get("/dashboard", handlers.HandleDashboard(lib))
	r.Get("/stats", handlers.HandleStats(lib))
	r.Get("/games", handlers.HandleGames(lib))
	r.Get("/games/{id}", handlers.HandleGame(lib))
	r.Put("/games/{id}/status", handlers.HandleSetStatus(lib))
	r.Get("/recommendations", handlers.HandleRecommendations(lib, pool, pitcher))
	r.Post("/recommendations/{id}/wishlist", handlers.HandleWishlistRecommendation(lib, pool))
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type gamesBody struct {
	Games  []models.Game `json:"games"`
	Groups struct {
		Untracked []models.Game `json:"untracked"`
		Finished  []models.Game `json:"finished"`
		Wishlist  []models.Game `json:"wishlist"`
		Disliked  []models.Game `json:"disliked"`
	} `json:"groups"`
	Genres []string `json:"genres"`
}

type statusBody struct {
	Game    models.Game `json:"game"`
	Message string      `json:"message"`
}

type recsBody struct {
	Eligible        bool                    `json:"eligible"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

func TestHandleGames(t *testing.T) {
	r := newRouter(newStore(t, library.Seed()), nil)

	rec := do(t, r, http.MethodGet, "/games", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[gamesBody](t, rec)
	assert.Len(t, body.Games, 15)
	assert.Len(t, body.Groups.Finished, 6)
	assert.Len(t, body.Groups.Wishlist, 5)
	assert.Len(t, body.Groups.Disliked, 4)
	assert.Empty(t, body.Groups.Untracked)
	assert.Len(t, body.Genres, 4)

	rec = do(t, r, http.MethodGet, "/games?q=hades", "")
	body = decode[gamesBody](t, rec)
	require.Len(t, body.Games, 1)
	assert.Equal(t, "Hades", body.Games[0].Title)
	assert.Len(t, body.Genres, 4)

	rec = do(t, r, http.MethodGet, "/games?genre=Action+RPG&status=disliked", "")
	body = decode[gamesBody](t, rec)
	assert.Len(t, body.Games, 3)
	assert.Empty(t, body.Groups.Finished)

	rec = do(t, r, http.MethodGet, "/games?status=playing", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGame(t *testing.T) {
	r := newRouter(newStore(t, library.Seed()), nil)

	rec := do(t, r, http.MethodGet, "/games/9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	g := decode[models.Game](t, rec)
	assert.Equal(t, "Zelda: Tears of the Kingdom", g.Title)
	assert.Equal(t, models.StatusFinished, g.Status)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/games/404", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/games/abc", "").Code)
}

func TestHandleSetStatus(t *testing.T) {
	st := newStore(t, library.Seed())
	r := newRouter(st, nil)

	rec := do(t, r, http.MethodPut, "/games/5/status", `{"status":"wishlist"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[statusBody](t, rec)
	assert.Equal(t, int64(5), body.Game.ID)
	assert.Equal(t, models.StatusWishlisted, body.Game.Status)
	assert.Equal(t, `Added "Call of Duty: Modern Warfare II" to your wishlist`, body.Message)

	g, err := st.Game(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWishlisted, g.Status)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/games/5/status", `{"status":"owned"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/games/5/status", `not json`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPut, "/games/404/status", `{"status":"finished"}`).Code)
}

func TestHandleStats(t *testing.T) {
	r := newRouter(newStore(t, library.Seed()), nil)

	rec := do(t, r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[types.StatisticsSummary](t, rec)
	assert.Equal(t, 15, s.TotalGames)
	assert.Equal(t, 298, s.TotalPlayTime)
	assert.Equal(t, 55, s.CompletionRate)
	assert.Equal(t, "Action-Adventure", s.FavoriteGenre)
}

func TestHandleStats_EmptyLibrary(t *testing.T) {
	r := newRouter(newStore(t, nil), nil)

	rec := do(t, r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[types.StatisticsSummary](t, rec)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Equal(t, "None", s.FavoriteGenre)
	assert.Contains(t, rec.Body.String(), `"genreBreakdown":[]`)
}

func TestHandleRecommendations(t *testing.T) {
	r := newRouter(newStore(t, library.Seed()), nil)

	rec := do(t, r, http.MethodGet, "/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[recsBody](t, rec)
	assert.True(t, body.Eligible)
	require.Len(t, body.Recommendations, 5)
	assert.Equal(t, "Based on your interest in Action RPG games.", body.Recommendations[1].Reason)
	assert.Empty(t, body.Recommendations[0].Pitch)
}

func TestHandleRecommendations_NotEligibleWithoutFinishedGames(t *testing.T) {
	r := newRouter(newStore(t, nil), nil)

	body := decode[recsBody](t, do(t, r, http.MethodGet, "/recommendations", ""))
	assert.False(t, body.Eligible)
	assert.Len(t, body.Recommendations, 5)
}

func TestHandleRecommendations_Pitches(t *testing.T) {
	st := newStore(t, library.Seed())

	p := &stubPitcher{}
	r := newRouter(st, p)

	body := decode[recsBody](t, do(t, r, http.MethodGet, "/recommendations", ""))
	assert.Empty(t, body.Recommendations[0].Pitch)
	assert.Equal(t, 0, p.calls)

	body = decode[recsBody](t, do(t, r, http.MethodGet, "/recommendations?pitch=1", ""))
	assert.Equal(t, "Play Baldur's Gate 3", body.Recommendations[0].Pitch)
	assert.Equal(t, 1, p.calls)

	broken := newRouter(st, &stubPitcher{err: errBroken})
	rec := do(t, broken, http.MethodGet, "/recommendations?pitch=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[recsBody](t, rec)
	require.Len(t, body.Recommendations, 5)
	assert.Empty(t, body.Recommendations[0].Pitch)
}

func TestHandleWishlistRecommendation(t *testing.T) {
	r := newRouter(newStore(t, library.Seed()), nil)

	rec := do(t, r, http.MethodPost, "/recommendations/101/wishlist", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[statusBody](t, rec)
	assert.Equal(t, "Baldur's Gate 3", body.Game.Title)
	assert.Equal(t, models.StatusWishlisted, body.Game.Status)

	recs := decode[recsBody](t, do(t, r, http.MethodGet, "/recommendations", ""))
	require.Len(t, recs.Recommendations, 4)
	for _, rc := range recs.Recommendations {
		assert.NotEqual(t, int64(101), rc.Game.ID)
	}

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/recommendations/3/wishlist", "").Code)
}

func TestHandleDashboard(t *testing.T) {
	r := newRouter(newStore(t, library.Seed()), nil)

	rec := do(t, r, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Stats         types.StatisticsSummary `json:"stats"`
		RecentlyAdded []models.Game           `json:"recentlyAdded"`
	}](t, rec)
	assert.Equal(t, 6, body.Stats.FinishedCount)
	require.Len(t, body.RecentlyAdded, 4)
	assert.Equal(t, int64(15), body.RecentlyAdded[0].ID)
}

func TestHandlers_StoreFailure(t *testing.T) {
	r := newRouter(failingLibrary{}, nil)

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodGet, "/games", ""},
		{http.MethodGet, "/games/1", ""},
		{http.MethodPut, "/games/1/status", `{"status":"finished"}`},
		{http.MethodGet, "/stats", ""},
		{http.MethodGet, "/recommendations", ""},
		{http.MethodPost, "/recommendations/101/wishlist", ""},
		{http.MethodGet, "/dashboard", ""},
	} {
		rec := do(t, r, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.target)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String(), tc.target)
	}
}
