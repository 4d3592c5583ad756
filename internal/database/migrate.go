package database

import (
	"taskbridge_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate создает или обновляет схему всех моделей приложения.
// Расширение uuid-ossp нужно для default uuid_generate_v4() первичных ключей.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Review{},
		&models.User{},
		&models.Document{},
		&models.Task{},
		&models.Request{},
	)
}
