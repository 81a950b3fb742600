package models

// Product represents a product in the catalogue.
// It only carries the id of its category; owners are resolved through the category.
type Product struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"categoryId"`
}

func (p *Product) TableName() string {
	return "products"
}
