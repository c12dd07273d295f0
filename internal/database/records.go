package database

import (
	"time"

	"arcade/backend/internal/models"

	"gorm.io/gorm"
)

// GameRecord is the persisted form of a catalog game. The auto-increment ID
// keeps insertion order; GameID is not unique because the catalog allows
// duplicate ids.
type GameRecord struct {
	gorm.Model
	GameID      string `gorm:"size:255;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string
	Thumbnail   string          `gorm:"size:1024"`
	GameType    models.GameType `gorm:"size:20"`
	Location    string          `gorm:"size:1024"`
	Category    string          `gorm:"size:100;index"`
	Tags        []string        `gorm:"serializer:json"`
	Featured    bool            `gorm:"not null;default:false"`
	AddedDate   time.Time
}

// CategoryRecord is the persisted form of a catalog category.
type CategoryRecord struct {
	gorm.Model
	CategoryID string `gorm:"size:100;unique;not null"`
	Name       string `gorm:"size:255;not null"`
	Icon       string `gorm:"size:255"`
}

func newGameRecord(g models.Game) GameRecord {
	return GameRecord{
		GameID:      g.ID,
		Title:       g.Title,
		Description: g.Description,
		Thumbnail:   g.Thumbnail,
		GameType:    g.Launch.Type,
		Location:    g.Launch.Location,
		Category:    g.Category,
		Tags:        g.Tags,
		Featured:    g.Featured,
		AddedDate:   g.AddedDate,
	}
}

func (r GameRecord) toGame() models.Game {
	return models.Game{
		ID:          r.GameID,
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		Launch:      models.Launch{Type: r.GameType, Location: r.Location},
		Category:    r.Category,
		Tags:        r.Tags,
		Featured:    r.Featured,
		AddedDate:   r.AddedDate,
	}
}

func newCategoryRecord(c models.GameCategory) CategoryRecord {
	return CategoryRecord{CategoryID: c.ID, Name: c.Name, Icon: c.Icon}
}

func (r CategoryRecord) toCategory() models.GameCategory {
	return models.GameCategory{ID: r.CategoryID, Name: r.Name, Icon: r.Icon}
}
