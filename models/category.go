package models

// Category represents a product category.
// It includes a unique id, a title, an icon and the id of the owning user.
type Category struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Icon    string `gorm:"not null" json:"icon"`
	OwnerID uint   `gorm:"not null;index" json:"ownerId"`
}

func (c *Category) TableName() string {
	return "categories"
}

// Label renders the category the way the product table shows it.
func (c Category) Label() string {
	return c.Icon + " - " + c.Title
}
