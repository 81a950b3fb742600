package models

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
)

//go:embed data/users.json data/categories.json data/products.json
var dataset embed.FS

// StaticSource serves the dataset bundled with the binary.
// Getters return copies, the loaded records are never handed out for mutation.
type StaticSource struct {
	users      []User
	categories []Category
	products   []Product
}

// NewStaticSource decodes the embedded dataset.
func NewStaticSource() (*StaticSource, error) {
	var s StaticSource
	if err := decodeDataset("data/users.json", &s.users); err != nil {
		return nil, err
	}
	if err := decodeDataset("data/categories.json", &s.categories); err != nil {
		return nil, err
	}
	if err := decodeDataset("data/products.json", &s.products); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewStaticSourceFrom wraps collections supplied by the caller.
func NewStaticSourceFrom(users []User, categories []Category, products []Product) *StaticSource {
	return &StaticSource{
		users:      slices.Clone(users),
		categories: slices.Clone(categories),
		products:   slices.Clone(products),
	}
}

func decodeDataset(name string, v any) error {
	raw, err := dataset.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *StaticSource) GetAllUsers() ([]User, error) {
	return slices.Clone(s.users), nil
}

func (s *StaticSource) GetAllCategories() ([]Category, error) {
	return slices.Clone(s.categories), nil
}

func (s *StaticSource) GetAllProducts() ([]Product, error) {
	return slices.Clone(s.products), nil
}
