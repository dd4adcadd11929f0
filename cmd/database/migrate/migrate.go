package migration

import (
	"Recipe-Share-Backend/entities"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultCuisines = []string{
	"Italian", "Thai", "Mexican", "Indian", "Chinese",
	"Japanese", "French", "Mediterranean", "American",
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Printf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cuisine{}); err != nil {
		log.Printf("Error migrating cuisine database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Printf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeStep{}); err != nil {
		log.Printf("Error migrating recipe step database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Rating{}); err != nil {
		log.Printf("Error migrating rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Comment{}); err != nil {
		log.Printf("Error migrating comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteRecipe{}); err != nil {
		log.Printf("Error migrating favorite database: %v", err)
		return err
	}

	if err := seedCuisines(db); err != nil {
		log.Printf("Error seeding cuisines: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedCuisines(db *gorm.DB) error {
	cuisines := make([]entities.Cuisine, 0, len(defaultCuisines))
	for _, name := range defaultCuisines {
		cuisines = append(cuisines, entities.Cuisine{ID: uuid.New(), Name: name})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cuisines).Error
}
