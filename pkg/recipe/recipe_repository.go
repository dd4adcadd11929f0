package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		ListRecipeSummaries(ctx context.Context, q domain.RecipeQuery, authorID *uuid.UUID) ([]domain.RecipeSummary, error)
		GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]entities.RecipeIngredient, error)
		GetRecipeSteps(ctx context.Context, recipeID uuid.UUID) ([]entities.RecipeStep, error)
		ReplaceRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep) error
		DeleteRecipeCascade(ctx context.Context, recipeID uuid.UUID) error
		ListCuisines(ctx context.Context) ([]entities.Cuisine, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		if len(steps) > 0 {
			if err := tx.Create(&steps).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipeSummaries is the derivation pipeline: one aggregation query that
// left-joins recipes with their ratings, comments and author, computes
// averageRating / totalRatings / totalComments at read time, and applies
// search, cuisine filter and sort. Recipes without ratings or comments still
// appear, with zero-valued aggregates.
func (r *recipeRepository) ListRecipeSummaries(ctx context.Context, q domain.RecipeQuery, authorID *uuid.UUID) ([]domain.RecipeSummary, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(`recipes.id, recipes.title, recipes.description, recipes.image_url,
			recipes.prep_time, recipes.cooking_time, recipes.servings, recipes.cuisine,
			recipes.created_at,
			COALESCE(AVG(ratings.rating), 0) AS average_rating,
			COUNT(DISTINCT ratings.id) AS total_ratings,
			COUNT(DISTINCT comments.id) AS total_comments,
			COALESCE(users.username, '') AS author_username`).
		Joins("LEFT JOIN ratings ON ratings.recipe_id = recipes.id").
		Joins("LEFT JOIN comments ON comments.recipe_id = recipes.id").
		Joins("LEFT JOIN users ON users.id = recipes.user_id").
		Group("recipes.id, recipes.title, recipes.description, recipes.image_url, recipes.prep_time, recipes.cooking_time, recipes.servings, recipes.cuisine, recipes.created_at, users.username")

	if authorID != nil {
		query = query.Where("recipes.user_id = ?", *authorID)
	}

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		if authorID != nil {
			// the personal feed searches title and description only
			query = query.Where(
				"LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ?",
				pattern, pattern,
			)
		} else {
			query = query.Where(
				"LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ? OR LOWER(recipes.cuisine) LIKE ?",
				pattern, pattern, pattern,
			)
		}
	}

	if q.Cuisine != "" && q.Cuisine != domain.CuisineAll {
		query = query.Where("recipes.cuisine = ?", q.Cuisine)
	}

	switch q.SortBy {
	case domain.SortOldest:
		query = query.Order("recipes.created_at ASC, recipes.id ASC")
	case domain.SortRating:
		// ties fall back to insertion order
		query = query.Order("average_rating DESC, recipes.created_at ASC, recipes.id ASC")
	default:
		query = query.Order("recipes.created_at DESC, recipes.id DESC")
	}

	var rows []summaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]entities.RecipeIngredient, error) {
	var ingredients []entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("ingredient_number ASC").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) GetRecipeSteps(ctx context.Context, recipeID uuid.UUID) ([]entities.RecipeStep, error) {
	var steps []entities.RecipeStep
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_number ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// ReplaceRecipe performs the destructive edit: the recipe row is updated and
// every child row is deleted and re-inserted with positions taken from the
// submitted order. All of it commits or none of it does.
func (r *recipeRepository) ReplaceRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]any{
				"title":        recipe.Title,
				"description":  recipe.Description,
				"servings":     recipe.Servings,
				"cooking_time": recipe.CookingTime,
				"prep_time":    recipe.PrepTime,
				"cuisine":      recipe.Cuisine,
				"image_url":    recipe.ImageURL,
				"updated_at":   recipe.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		if len(steps) > 0 {
			if err := tx.Create(&steps).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteRecipeCascade removes the recipe and every dependent row in one
// transaction. Image files are the caller's concern; they are cleaned up
// best-effort after the records are gone.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.FavoriteRecipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recipeID).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) ListCuisines(ctx context.Context) ([]entities.Cuisine, error) {
	var cuisines []entities.Cuisine
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

type summaryRow struct {
	ID             uuid.UUID
	Title          string
	Description    string
	ImageURL       string
	PrepTime       int
	CookingTime    int
	Servings       int
	Cuisine        string
	CreatedAt      time.Time
	AverageRating  float64
	TotalRatings   int64
	TotalComments  int64
	AuthorUsername string
}

func (row summaryRow) toSummary() domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:             row.ID.String(),
		Title:          row.Title,
		Description:    row.Description,
		ImageURL:       row.ImageURL,
		PrepTime:       row.PrepTime,
		CookingTime:    row.CookingTime,
		Servings:       row.Servings,
		Cuisine:        row.Cuisine,
		CreatedAt:      row.CreatedAt,
		AverageRating:  row.AverageRating,
		TotalRatings:   row.TotalRatings,
		TotalComments:  row.TotalComments,
		AuthorUsername: row.AuthorUsername,
	}
}
