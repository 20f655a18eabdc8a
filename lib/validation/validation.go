package validation

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/icco/gamelog/models"
)

// ValidateID parses a game id from a URL segment. Ids are positive integers.
func ValidateID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid game id: %q", raw)
	}
	if id < 1 {
		return 0, fmt.Errorf("game id must be greater than 0")
	}
	return id, nil
}

// ValidateStatus parses a status name from a request.
func ValidateStatus(raw string) (models.Status, error) {
	return models.ParseStatus(raw)
}

// ValidateGame checks the fields every stored game must have.
func ValidateGame(g models.Game) error {
	if g.ID < 1 {
		return fmt.Errorf("game id must be greater than 0")
	}
	if g.Title == "" {
		return fmt.Errorf("game %d has an empty title", g.ID)
	}
	if g.Rating != nil && (*g.Rating < 0 || *g.Rating > 10) {
		return fmt.Errorf("game %d rating %.1f is outside 0-10", g.ID, *g.Rating)
	}
	if g.PlayTime != nil && *g.PlayTime < 0 {
		return fmt.Errorf("game %d has negative play time", g.ID)
	}
	return nil
}

// ValidateLibrary checks every game and that ids are unique.
func ValidateLibrary(games []models.Game) error {
	seen := make(map[int64]bool, len(games))
	for _, g := range games {
		if err := ValidateGame(g); err != nil {
			return err
		}
		if seen[g.ID] {
			return fmt.Errorf("duplicate game id %d", g.ID)
		}
		seen[g.ID] = true
	}
	return nil
}

// WriteError writes an error response to the HTTP response writer.
// It takes a response writer, error, and HTTP status code.
func WriteError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); err != nil {
		slog.Error("Failed to encode error response", slog.Any("error", err))
	}
}
