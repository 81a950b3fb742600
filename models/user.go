package models

type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User owns categories.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Sex  Sex    `gorm:"type:varchar(1);not null" json:"sex"`
}

func (u *User) TableName() string {
	return "users"
}
