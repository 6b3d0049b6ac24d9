package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rohits-web03/minifeed/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the seed database and migrates the seed tables.
// driver is "postgres" or "sqlite".
func ConnectDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.SeedUser{}, &models.SeedPost{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	slog.Info("connected to seed database", "driver", dialector.Name())
	return db, nil
}

// DBSource reads the seed collections from the seed_users and seed_posts tables.
type DBSource struct {
	DB *gorm.DB
}

func (s DBSource) Load(ctx context.Context) (models.Dataset, error) {
	var data models.Dataset
	db := s.DB.WithContext(ctx)
	if err := db.Order("position, id").Find(&data.Users).Error; err != nil {
		return models.Dataset{}, fmt.Errorf("load users: %w", err)
	}
	if err := db.Order("position, id").Find(&data.Posts).Error; err != nil {
		return models.Dataset{}, fmt.Errorf("load posts: %w", err)
	}
	return data, nil
}

// SeedDatabase replaces the contents of the seed tables with data. Record
// order is kept so replies load back in thread order.
func SeedDatabase(ctx context.Context, db *gorm.DB, data models.Dataset) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.SeedPost{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.SeedUser{}).Error; err != nil {
			return err
		}

		users := make([]models.SeedUser, len(data.Users))
		for i, u := range data.Users {
			u.Position = i
			users[i] = u
		}
		posts := make([]models.SeedPost, len(data.Posts))
		for i, p := range data.Posts {
			p.Position = i
			posts[i] = p
		}

		if len(users) > 0 {
			if err := tx.CreateInBatches(users, 100).Error; err != nil {
				return err
			}
		}
		if len(posts) > 0 {
			if err := tx.CreateInBatches(posts, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
