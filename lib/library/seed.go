package library

import "github.com/icco/gamelog/models"

// Seed returns a fresh copy of the starting library.
func Seed() []models.Game {
	return []models.Game{
		{
			ID:          1,
			Title:       "The Last of Us Part II",
			ImageURL:    "https://images.unsplash.com/photo-1616889063140-90356bacaec1?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("PlayStation"),
			ReleaseYear: models.Ptr(2020),
			Rating:      models.Ptr(9.5),
			Status:      models.StatusFinished,
			PlayTime:    models.Ptr(25),
		},
		{
			ID:          2,
			Title:       "Elden Ring",
			ImageURL:    "https://images.unsplash.com/photo-1581120083654-150513117cbf?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2022),
			Rating:      models.Ptr(9.6),
			Status:      models.StatusFinished,
			PlayTime:    models.Ptr(87),
		},
		{
			ID:          3,
			Title:       "Horizon Forbidden West",
			ImageURL:    "https://images.unsplash.com/photo-1639154945057-6f42d79c4ea2?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("PlayStation"),
			ReleaseYear: models.Ptr(2022),
			Rating:      models.Ptr(9.2),
			Status:      models.StatusWishlisted,
		},
		{
			ID:          4,
			Title:       "Star Wars Jedi: Survivor",
			ImageURL:    "https://images.unsplash.com/photo-1653831340008-4154a297f887?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(8.8),
			Status:      models.StatusWishlisted,
		},
		{
			ID:          5,
			Title:       "Call of Duty: Modern Warfare II",
			ImageURL:    "https://images.unsplash.com/photo-1652799325598-d1b1efa9b3d9?q=80&w=1000",
			Genre:       "First-Person Shooter",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2022),
			Rating:      models.Ptr(7.9),
			Status:      models.StatusDisliked,
		},
		{
			ID:          6,
			Title:       "God of War Ragnarök",
			ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("PlayStation"),
			ReleaseYear: models.Ptr(2022),
			Rating:      models.Ptr(9.7),
			Status:      models.StatusFinished,
			PlayTime:    models.Ptr(35),
		},
		{
			ID:          7,
			Title:       "Cyberpunk 2077",
			ImageURL:    "https://images.unsplash.com/photo-1640216589314-803a96fcf5bd?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2020),
			Rating:      models.Ptr(7.1),
			Status:      models.StatusDisliked,
		},
		{
			ID:          8,
			Title:       "Final Fantasy XVI",
			ImageURL:    "https://images.unsplash.com/photo-1579373903781-fd5c0c30c4cd?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("PlayStation"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(8.7),
			Status:      models.StatusWishlisted,
		},
		{
			ID:          9,
			Title:       "Zelda: Tears of the Kingdom",
			ImageURL:    "https://images.unsplash.com/photo-1605979257913-1704eb7b6246?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("Nintendo Switch"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(9.8),
			Status:      models.StatusFinished,
			PlayTime:    models.Ptr(62),
		},
		{
			ID:          10,
			Title:       "Assassin's Creed Valhalla",
			ImageURL:    "https://images.unsplash.com/photo-1580234811497-9df7fd2f357e?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2020),
			Rating:      models.Ptr(8.5),
			Status:      models.StatusDisliked,
		},
		{
			ID:          11,
			Title:       "Hades",
			ImageURL:    "https://images.unsplash.com/photo-1634902778384-26f8fc4ad747?q=80&w=1000",
			Genre:       "Roguelike",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2020),
			Rating:      models.Ptr(9.3),
			Status:      models.StatusFinished,
			PlayTime:    models.Ptr(42),
		},
		{
			ID:          12,
			Title:       "Spider-Man 2",
			ImageURL:    "https://images.unsplash.com/photo-1608889476561-6242cfdbf622?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("PlayStation"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(9.4),
			Status:      models.StatusWishlisted,
		},
		{
			ID:          13,
			Title:       "Ghost of Tsushima",
			ImageURL:    "https://images.unsplash.com/photo-1529949082-1df6c3fe622f?q=80&w=1000",
			Genre:       "Action-Adventure",
			Platform:    models.Ptr("PlayStation"),
			ReleaseYear: models.Ptr(2020),
			Rating:      models.Ptr(9.2),
			Status:      models.StatusFinished,
			PlayTime:    models.Ptr(47),
		},
		{
			ID:          14,
			Title:       "Diablo IV",
			ImageURL:    "https://images.unsplash.com/photo-1601643157091-ce5c665179ab?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("Multiple"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(8.2),
			Status:      models.StatusWishlisted,
		},
		{
			ID:          15,
			Title:       "Forspoken",
			ImageURL:    "https://images.unsplash.com/photo-1547119957-637f8679db1e?q=80&w=1000",
			Genre:       "Action RPG",
			Platform:    models.Ptr("PlayStation & PC"),
			ReleaseYear: models.Ptr(2023),
			Rating:      models.Ptr(6.5),
			Status:      models.StatusDisliked,
		},
	}
}
