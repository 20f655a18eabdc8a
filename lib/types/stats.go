package types

// Breakdown is one category row of a genre or platform distribution.
type Breakdown struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// StatisticsSummary represents statistics derived from a game collection.
type StatisticsSummary struct {
	TotalGames        int         `json:"totalGames"`
	FinishedCount     int         `json:"finishedCount"`
	WishlistCount     int         `json:"wishlistCount"`
	DislikedCount     int         `json:"dislikedCount"`
	UntrackedCount    int         `json:"untrackedCount"`
	TotalPlayTime     int         `json:"totalPlayTime"`
	FavoriteGenre     string      `json:"favoriteGenre"`
	FavoritePlatform  string      `json:"favoritePlatform"`
	CompletionRate    int         `json:"completionRate"`
	AverageRating     float64     `json:"averageRating"`
	GenreBreakdown    []Breakdown `json:"genreBreakdown"`
	PlatformBreakdown []Breakdown `json:"platformBreakdown"`
}
