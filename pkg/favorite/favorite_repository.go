package favorite

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		GetFavoriteSummaries(ctx context.Context, userID uuid.UUID) ([]domain.RecipeSummary, error)
		RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite is an idempotent insert: ON CONFLICT on the unique index
// swallows duplicates, so concurrent adds for the same pair cannot fail.
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	favorite := entities.FavoriteRecipe{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.FavoriteRecipe{}).Error
}

func (r *favoriteRepository) GetFavoriteSummaries(ctx context.Context, userID uuid.UUID) ([]domain.RecipeSummary, error) {
	var rows []struct {
		ID            uuid.UUID
		Title         string
		Description   string
		ImageURL      string
		PrepTime      int
		CookingTime   int
		Servings      int
		Cuisine       string
		CreatedAt     time.Time
		AverageRating float64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(`recipes.id, recipes.title, recipes.description, recipes.image_url,
			recipes.prep_time, recipes.cooking_time, recipes.servings, recipes.cuisine,
			recipes.created_at,
			COALESCE(AVG(ratings.rating), 0) AS average_rating`).
		Joins("JOIN favorite_recipes ON favorite_recipes.recipe_id = recipes.id").
		Joins("LEFT JOIN ratings ON ratings.recipe_id = recipes.id").
		Where("favorite_recipes.user_id = ?", userID).
		Group("recipes.id, recipes.title, recipes.description, recipes.image_url, recipes.prep_time, recipes.cooking_time, recipes.servings, recipes.cuisine, recipes.created_at, favorite_recipes.created_at").
		Order("favorite_recipes.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.RecipeSummary{
			ID:            row.ID.String(),
			Title:         row.Title,
			Description:   row.Description,
			ImageURL:      row.ImageURL,
			PrepTime:      row.PrepTime,
			CookingTime:   row.CookingTime,
			Servings:      row.Servings,
			Cuisine:       row.Cuisine,
			CreatedAt:     row.CreatedAt,
			AverageRating: row.AverageRating,
		})
	}
	return summaries, nil
}

func (r *favoriteRepository) RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
