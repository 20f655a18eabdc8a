package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned by ParseStatus for unknown status names.
var ErrInvalidStatus = errors.New("invalid status")

// Status is the bucket a game is classified into. The zero value is
// StatusUntracked.
type Status string

const (
	StatusUntracked  Status = ""
	StatusFinished   Status = "finished"
	StatusWishlisted Status = "wishlist"
	StatusDisliked   Status = "disliked"
)

// ParseStatus converts a wire name into a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "untracked", "none":
		return StatusUntracked, nil
	case "finished":
		return StatusFinished, nil
	case "wishlist", "wishlisted":
		return StatusWishlisted, nil
	case "disliked":
		return StatusDisliked, nil
	}
	return StatusUntracked, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusFinished:
		return "Finished"
	case StatusWishlisted:
		return "Wishlisted"
	case StatusDisliked:
		return "Disliked"
	default:
		return "Untracked"
	}
}

// Classified reports whether the status is anything other than untracked.
func (s Status) Classified() bool {
	return s != StatusUntracked
}

type Game struct {
	ID          int64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Position    int      `gorm:"index" json:"-"`
	Title       string   `gorm:"not null" json:"title"`
	ImageURL    string   `json:"imageUrl"`
	Genre       string   `gorm:"index" json:"genre"`
	Platform    *string  `json:"platform,omitempty"`
	ReleaseYear *int     `json:"releaseYear,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Status      Status   `gorm:"index" json:"status"`
	PlayTime    *int     `json:"playTime,omitempty"` // hours, Finished only
}

// GetTitle returns the title of the game.
func (g Game) GetTitle() string {
	return g.Title
}

// Recommendation pairs a candidate game with the reason it was suggested.
type Recommendation struct {
	Game   Game   `json:"game"`
	Reason string `json:"reason"`
	Pitch  string `json:"pitch,omitempty"`
}

// Ptr returns a pointer to v. Used to fill optional Game fields.
func Ptr[T any](v T) *T {
	return &v
}
