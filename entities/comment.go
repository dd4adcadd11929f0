package entities

import (
	"github.com/google/uuid"
)

type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	UserID   uuid.UUID `json:"user_id"`
	Content  string    `gorm:"type:text" json:"content"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
