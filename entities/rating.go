package entities

import (
	"github.com/google/uuid"
)

// Rating keeps at most one row per (recipe, user). Writes go through an
// ON CONFLICT upsert against this index, never a read-modify-write.
type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_ratings_recipe_user" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_ratings_recipe_user" json:"user_id"`
	Rating   int       `json:"rating"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
