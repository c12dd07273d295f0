package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"arcade/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and runs migrations.
func Connect(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&GameRecord{}, &CategoryRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Mirror keeps a database copy of the catalog.
type Mirror struct {
	db *gorm.DB
}

// NewMirror wraps an open database.
func NewMirror(db *gorm.DB) *Mirror {
	return &Mirror{db: db}
}

// Load returns the persisted catalog. Empty tables are first filled with
// the given seed so the database and the store start out identical.
func (m *Mirror) Load(seedGames []models.Game, seedCategories []models.GameCategory) ([]models.Game, []models.GameCategory, error) {
	var games []models.Game
	var categories []models.GameCategory

	err := m.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CategoryRecord{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seedCategories) > 0 {
			records := make([]CategoryRecord, 0, len(seedCategories))
			for _, c := range seedCategories {
				records = append(records, newCategoryRecord(c))
			}
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&GameRecord{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(seedGames) > 0 {
			records := make([]GameRecord, 0, len(seedGames))
			for _, g := range seedGames {
				records = append(records, newGameRecord(g))
			}
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		var categoryRecords []CategoryRecord
		if err := tx.Order("id").Find(&categoryRecords).Error; err != nil {
			return err
		}
		var gameRecords []GameRecord
		if err := tx.Order("id").Find(&gameRecords).Error; err != nil {
			return err
		}

		for _, r := range categoryRecords {
			categories = append(categories, r.toCategory())
		}
		for _, r := range gameRecords {
			games = append(games, r.toGame())
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return games, categories, nil
}

// Apply writes a single catalog change.
func (m *Mirror) Apply(change models.Change) error {
	switch change.Type {
	case models.ChangeGameAdded:
		record := newGameRecord(change.Game)
		return m.db.Create(&record).Error
	case models.ChangeGameRemoved:
		var record GameRecord
		err := m.db.Where("game_id = ?", change.Game.ID).Order("id").First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return m.db.Unscoped().Delete(&record).Error
	}
	return fmt.Errorf("unknown change type %q", change.Type)
}

// Observe is a catalog observer that logs failed writes; catalog mutations
// never fail because of the mirror.
func (m *Mirror) Observe(change models.Change) {
	if err := m.Apply(change); err != nil {
		log.Printf("database: failed to mirror %s %q: %v", change.Type, change.Game.ID, err)
	}
}

// Close releases the underlying connection pool.
func (m *Mirror) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
