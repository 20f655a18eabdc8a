package recommend

import "github.com/icco/gamelog/models"

// DefaultPool returns a fresh copy of the fixed candidate pool. Candidate ids
// do not overlap the seed library.
func DefaultPool() []models.Game {
	return []models.Game{
		{
			ID:          101,
			Title:       "Baldur's Gate 3",
			ImageURL:    "https://images.unsplash.com/photo-1598550476439-6847785fcea6?q=80&w=1000",
			Genre:       "RPG",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(9.7),
		},
		{
			ID:          102,
			Title:       "Starfield",
			ImageURL:    "https://images.unsplash.com/photo-1502134249126-9f3755a50d78?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("Xbox & PC"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(8.5),
		},
		{
			ID:          103,
			Title:       "Resident Evil 4 Remake",
			ImageURL:    "https://images.unsplash.com/photo-1613160717888-fcc5e3b66a28?q=80&w=1000",
			Genre:       "Survival Horror",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(9.3),
		},
		{
			ID:          104,
			Title:       "Metroid Prime Remastered",
			ImageURL:    "https://images.unsplash.com/photo-1551103782-8ab07afd45c1?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("Nintendo Switch"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(9.4),
		},
		{
			ID:          105,
			Title:       "Hogwarts Legacy",
			ImageURL:    "https://images.unsplash.com/photo-1505929040793-c59f045fb392?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(8.6),
		},
	}
}
