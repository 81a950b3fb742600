package models

import (
	"gorm.io/gorm"
)

// CatalogueRepository reads the three catalogue tables.
// Rows are always returned in id order so joins over them are deterministic.
type CatalogueRepository struct {
	db *gorm.DB
}

func NewCatalogueRepository(db *gorm.DB) *CatalogueRepository {
	return &CatalogueRepository{
		db: db,
	}
}

func (r *CatalogueRepository) GetAllUsers() ([]User, error) {
	var users []User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *CatalogueRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogueRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
