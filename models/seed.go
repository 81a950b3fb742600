package models

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// Seed creates the catalogue tables and fills them from src.
// A database that already holds products is left untouched.
func Seed(db *gorm.DB, src *StaticSource) error {
	if err := db.AutoMigrate(&User{}, &Category{}, &Product{}); err != nil {
		return fmt.Errorf("migrate catalogue tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Product{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		if count > 0 {
			return nil
		}

		// Owners first, then categories, then products.
		if len(src.users) > 0 {
			users := slices.Clone(src.users)
			if err := tx.Create(&users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(src.categories) > 0 {
			categories := slices.Clone(src.categories)
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
		if len(src.products) > 0 {
			products := slices.Clone(src.products)
			if err := tx.Create(&products).Error; err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
		return nil
	})
}
