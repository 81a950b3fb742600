// Package catalogue joins products with their categories and owners and
// answers filtered, sorted views over the result.
package catalogue

import (
	"errors"
	"fmt"

	"github.com/mytheresa/catalogue-browser/models"
)

var (
	// ErrUnknownCategory is returned when a product points at a category that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownOwner is returned when a category points at a user that does not exist.
	ErrUnknownOwner = errors.New("unknown owner")
)

// EnrichedProduct is a product with its category and the category owner resolved.
type EnrichedProduct struct {
	models.Product
	Category models.Category `json:"category"`
	User     models.User     `json:"user"`
}

// Source supplies the three collections the catalogue is built from.
type Source interface {
	GetAllUsers() ([]models.User, error)
	GetAllCategories() ([]models.Category, error)
	GetAllProducts() ([]models.Product, error)
}

// Load reads every collection from src and joins them.
func Load(src Source) ([]EnrichedProduct, error) {
	users, err := src.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	categories, err := src.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := src.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return BuildCatalogue(products, categories, users)
}

// BuildCatalogue resolves the category and owner of every product.
// The result keeps the order of products. A dangling reference fails the
// whole build; no product is dropped.
func BuildCatalogue(products []models.Product, categories []models.Category, users []models.User) ([]EnrichedProduct, error) {
	categoryByID := make(map[uint]models.Category, len(categories))
	for _, c := range categories {
		if _, seen := categoryByID[c.ID]; !seen {
			categoryByID[c.ID] = c
		}
	}

	userByID := make(map[uint]models.User, len(users))
	for _, u := range users {
		if _, seen := userByID[u.ID]; !seen {
			userByID[u.ID] = u
		}
	}

	items := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		category, ok := categoryByID[p.CategoryID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w %d", p.ID, ErrUnknownCategory, p.CategoryID)
		}
		owner, ok := userByID[category.OwnerID]
		if !ok {
			return nil, fmt.Errorf("product %d: category %d: %w %d", p.ID, category.ID, ErrUnknownOwner, category.OwnerID)
		}

		items = append(items, EnrichedProduct{
			Product:  p,
			Category: category,
			User:     owner,
		})
	}

	return items, nil
}
