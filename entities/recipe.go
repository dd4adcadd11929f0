package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	PrepTime    int       `json:"prep_time"`
	CookingTime int       `json:"cooking_time"`
	Servings    int       `json:"servings"`
	Cuisine     string    `gorm:"index" json:"cuisine"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}

type RecipeIngredient struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID         uuid.UUID `gorm:"index" json:"recipe_id"`
	IngredientNumber int       `json:"ingredient_number"`
	IngredientName   string    `json:"ingredient_name"`
	Quantity         string    `json:"quantity"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

type RecipeStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"index" json:"recipe_id"`
	StepNumber  int       `json:"step_number"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
