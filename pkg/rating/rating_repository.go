package rating

import (
	"Recipe-Share-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RatingRepository interface {
		UpsertRating(ctx context.Context, rating *entities.Rating) error
		GetRecipeRatingStats(ctx context.Context, recipeID uuid.UUID) (float64, int64, error)
		GetUserRating(ctx context.Context, recipeID, userID uuid.UUID) (*int, error)
		RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating resolves concurrent writes for the same (recipe, user) pair
// at the storage layer: ON CONFLICT on the unique index updates the value in
// place, so two racing calls can never produce two rows.
func (r *ratingRepository) UpsertRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetRecipeRatingStats(ctx context.Context, recipeID uuid.UUID) (float64, int64, error) {
	var stats struct {
		AverageRating float64
		TotalRatings  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("recipe_id = ?", recipeID).
		Scan(&stats).Error; err != nil {
		return 0, 0, err
	}
	return stats.AverageRating, stats.TotalRatings, nil
}

func (r *ratingRepository) GetUserRating(ctx context.Context, recipeID, userID uuid.UUID) (*int, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating.Rating, nil
}

func (r *ratingRepository) RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
