package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe and all associated data deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

// Sort keys accepted by the listing endpoints.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortRating = "rating"
)

type (
	RecipeQuery struct {
		Search  string
		SortBy  string
		Cuisine string
	}

	IngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	InstructionRequest struct {
		Step  string `json:"step" validate:"required"`
		Image string `json:"image"`
	}

	CreateRecipeRequest struct {
		Title        string               `json:"title" validate:"required"`
		Description  string               `json:"description" validate:"required"`
		Servings     int                  `json:"servings" validate:"required,min=1"`
		CookingTime  int                  `json:"cookingTime" validate:"required,min=1"`
		PrepTime     int                  `json:"prepTime" validate:"required,min=1"`
		Cuisine      string               `json:"cuisine" validate:"required"`
		ImageURL     string               `json:"image_url"`
		Ingredients  []IngredientRequest  `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []InstructionRequest `json:"instructions" validate:"required,min=1,dive"`
	}

	UpdateRecipeRequest struct {
		Title        string               `json:"title" validate:"required"`
		Description  string               `json:"description" validate:"required"`
		Servings     int                  `json:"servings" validate:"required,min=1"`
		CookingTime  int                  `json:"cookingTime" validate:"required,min=1"`
		PrepTime     int                  `json:"prepTime" validate:"required,min=1"`
		Cuisine      string               `json:"cuisine" validate:"required"`
		ImageURL     string               `json:"image_url"`
		Ingredients  []IngredientRequest  `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []InstructionRequest `json:"instructions" validate:"required,min=1,dive"`
	}

	// RecipeSummary is a recipe row annotated with the aggregates the
	// derivation pipeline computes at read time.
	RecipeSummary struct {
		ID             string    `json:"_id"`
		Title          string    `json:"title"`
		Description    string    `json:"description"`
		ImageURL       string    `json:"image_url,omitempty"`
		PrepTime       int       `json:"prep_time"`
		CookingTime    int       `json:"cooking_time"`
		Servings       int       `json:"servings"`
		Cuisine        string    `json:"cuisine"`
		CreatedAt      time.Time `json:"created_at"`
		AverageRating  float64   `json:"averageRating"`
		TotalRatings   int64     `json:"totalRatings"`
		TotalComments  int64     `json:"totalComments"`
		AuthorUsername string    `json:"author_username,omitempty"`
	}

	// HomeRecipe feeds the landing page lists. AverageRating is a pointer:
	// top-rated entries always carry it (0 for an unrated recipe), latest
	// entries omit the key entirely.
	HomeRecipe struct {
		ID            string    `json:"_id"`
		Title         string    `json:"title"`
		Description   string    `json:"description"`
		ImageURL      string    `json:"imageUrl,omitempty"`
		CreatedAt     time.Time `json:"createdAt"`
		PrepTime      int       `json:"prep_time"`
		CookingTime   int       `json:"cooking_time"`
		Servings      int       `json:"servings"`
		Cuisine       string    `json:"cuisine"`
		AverageRating *float64  `json:"averageRating,omitempty"`
		Author        Author    `json:"author"`
	}

	Author struct {
		Username string `json:"username"`
	}

	HomeFeedResponse struct {
		LatestRecipes   []HomeRecipe `json:"latestRecipes"`
		TopRatedRecipes []HomeRecipe `json:"topRatedRecipes"`
	}
)
