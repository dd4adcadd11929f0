package entities

import (
	"github.com/google/uuid"
)

type Cuisine struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}
