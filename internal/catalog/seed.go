package catalog

import (
	"time"

	"arcade/backend/internal/models"
)

// SeedGames returns the built-in game list, every entry added at addedAt.
func SeedGames(addedAt time.Time) []models.Game {
	return []models.Game{
		// HTML5 games (iframe)
		{
			ID:          "stickman-hook",
			Title:       "Stickman Hook",
			Description: "Swing through levels and avoid obstacles.",
			Thumbnail:   "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQb9e_QMOr5fW67QTsl5J0go_f_7CYmiBSpzQ&s",
			Launch:      models.IframeEmbed("https://html5gameshq.com/iframed/cut-the-rope/"),
			Category:    "arcade",
			Tags:        []string{"action", "skill"},
			Featured:    true,
			AddedDate:   addedAt,
		},
		{
			ID:          "cut-the-rope",
			Title:       "Cut the Rope",
			Description: "Feed candy to Om Nom!",
			Thumbnail:   "https://imgs.crazygames.com/cut-the-rope-ebx_16x9/20240530085010/cut-the-rope-ebx_16x9-cover?metadata=none&quality=60&height=6407",
			Launch:      models.IframeEmbed("https://html5gameshq.com/iframed/cut-the-rope"),
			Category:    "puzzle",
			Tags:        []string{"physics", "fun"},
			Featured:    false,
			AddedDate:   addedAt,
		},

		// Flash games (SWF)
		{
			ID:          "bad-piggies",
			Title:       "Bad Piggies",
			Description: "Classic Flash game powered by Ruffle emulator",
			Thumbnail:   "https://i.ytimg.com/vi/YsCpDaSooWA/maxresdefault.jpg?sqp=-oaymwEmCIAKENAF8quKqQMa8AEB-AH-CYAC0AWKAgwIABABGFsgZShWMA8=&rs=AOn4CLA-tc-dFs9Xw3ZgaNwGVulJSBuygg",
			Launch:      models.FlashResource("https://cdn.jsdelivr.net/gh/bubbls/UGS-file-encryption@785251c510413f75ce4ccc3530b91f523f03fda8/IpvdsF8mGgh7u4.swf"),
			Category:    "arcade",
			Tags:        []string{"flash", "classic", "retro"},
			Featured:    true,
			AddedDate:   addedAt,
		},
		{
			ID:          "happy-wheels",
			Title:       "Happy Wheels",
			Description: "Classic Flash game powered by Ruffle emulator",
			Thumbnail:   "https://m.media-amazon.com/images/M/MV5BYTY1YWQxMTAtMjhiNy00NTJhLTg3NTMtM2NlOTA3ZDdlMTYxXkEyXkFqcGc@._V1_.jpg",
			Launch:      models.FlashResource("https://cdn.jsdelivr.net/gh/bubbls/UGS-file-encryption@97af31ec5b7d4858652ff2304c42200dc472fc7d/HappyWheels.swf"),
			Category:    "arcade",
			Tags:        []string{"flash", "classic", "retro"},
			Featured:    true,
			AddedDate:   addedAt,
		},
	}
}

// SeedCategories returns the built-in category list.
func SeedCategories() []models.GameCategory {
	return []models.GameCategory{
		{ID: "arcade", Name: "Arcade"},
		{ID: "puzzle", Name: "Puzzle"},
		{ID: "action", Name: "Action"},
		{ID: "strategy", Name: "Strategy"},
		{ID: "sports", Name: "Sports"},
	}
}
