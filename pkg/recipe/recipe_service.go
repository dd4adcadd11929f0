package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/rating"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, q domain.RecipeQuery) ([]domain.RecipeSummary, error)
		ListMyRecipes(ctx context.Context, userID string, q domain.RecipeQuery) ([]domain.RecipeSummary, error)
		GetRecipeOverview(ctx context.Context, q domain.RecipeQuery) ([]domain.RecipeSummary, error)
		GetHomeFeed(ctx context.Context) (domain.HomeFeedResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (*entities.Recipe, float64, *int, error)
		GetRecipeIngredients(ctx context.Context, recipeID string) ([]entities.RecipeIngredient, error)
		GetRecipeSteps(ctx context.Context, recipeID string) ([]entities.RecipeStep, error)
		GetEditDetail(ctx context.Context, recipeID string) (*entities.Recipe, []entities.RecipeIngredient, []entities.RecipeStep, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
		GetCuisines(ctx context.Context) ([]entities.Cuisine, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		ratingRepository rating.RatingRepository
		storage          storage.Storage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ratingRepository rating.RatingRepository, store storage.Storage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		ratingRepository: ratingRepository,
		storage:          store,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, q domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	return s.recipeRepository.ListRecipeSummaries(ctx, q, nil)
}

func (s *recipeService) ListMyRecipes(ctx context.Context, userID string, q domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.recipeRepository.ListRecipeSummaries(ctx, q, &userUUID)
}

func (s *recipeService) GetRecipeOverview(ctx context.Context, q domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	return s.recipeRepository.ListRecipeSummaries(ctx, q, nil)
}

func (s *recipeService) GetHomeFeed(ctx context.Context) (domain.HomeFeedResponse, error) {
	latest, err := s.recipeRepository.ListRecipeSummaries(ctx, domain.RecipeQuery{SortBy: domain.SortLatest}, nil)
	if err != nil {
		return domain.HomeFeedResponse{}, err
	}

	topRated, err := s.recipeRepository.ListRecipeSummaries(ctx, domain.RecipeQuery{SortBy: domain.SortRating}, nil)
	if err != nil {
		return domain.HomeFeedResponse{}, err
	}

	feed := domain.HomeFeedResponse{
		LatestRecipes:   make([]domain.HomeRecipe, 0, len(latest)),
		TopRatedRecipes: make([]domain.HomeRecipe, 0, len(topRated)),
	}
	for _, summary := range latest {
		feed.LatestRecipes = append(feed.LatestRecipes, toHomeRecipe(summary, false))
	}
	for _, summary := range topRated {
		feed.TopRatedRecipes = append(feed.TopRatedRecipes, toHomeRecipe(summary, true))
	}
	return feed, nil
}

func toHomeRecipe(summary domain.RecipeSummary, withRating bool) domain.HomeRecipe {
	home := domain.HomeRecipe{
		ID:          summary.ID,
		Title:       summary.Title,
		Description: summary.Description,
		ImageURL:    summary.ImageURL,
		CreatedAt:   summary.CreatedAt,
		PrepTime:    summary.PrepTime,
		CookingTime: summary.CookingTime,
		Servings:    summary.Servings,
		Cuisine:     summary.Cuisine,
		Author:      domain.Author{Username: summary.AuthorUsername},
	}
	if withRating {
		// always present on the top-rated list, zero included
		home.AverageRating = &summary.AverageRating
	}
	return home
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (*entities.Recipe, float64, *int, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, 0, nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil, domain.ErrRecipeNotFound
		}
		return nil, 0, nil, err
	}

	average, _, err := s.ratingRepository.GetRecipeRatingStats(ctx, recipeUUID)
	if err != nil {
		return nil, 0, nil, err
	}

	var userRating *int
	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return nil, 0, nil, domain.ErrParseUUID
		}
		userRating, err = s.ratingRepository.GetUserRating(ctx, recipeUUID, userUUID)
		if err != nil {
			return nil, 0, nil, err
		}
	}

	return recipe, average, userRating, nil
}

func (s *recipeService) GetRecipeIngredients(ctx context.Context, recipeID string) ([]entities.RecipeIngredient, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.recipeRepository.GetRecipeIngredients(ctx, recipeUUID)
}

func (s *recipeService) GetRecipeSteps(ctx context.Context, recipeID string) ([]entities.RecipeStep, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.recipeRepository.GetRecipeSteps(ctx, recipeUUID)
}

func (s *recipeService) GetEditDetail(ctx context.Context, recipeID string) (*entities.Recipe, []entities.RecipeIngredient, []entities.RecipeStep, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, nil, nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, domain.ErrRecipeNotFound
		}
		return nil, nil, nil, err
	}

	ingredients, err := s.recipeRepository.GetRecipeIngredients(ctx, recipeUUID)
	if err != nil {
		return nil, nil, nil, err
	}

	steps, err := s.recipeRepository.GetRecipeSteps(ctx, recipeUUID)
	if err != nil {
		return nil, nil, nil, err
	}

	return recipe, ingredients, steps, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PrepTime:    req.PrepTime,
		CookingTime: req.CookingTime,
		Servings:    req.Servings,
		Cuisine:     req.Cuisine,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	ingredients, steps := buildChildren(recipe.ID, req.Ingredients, req.Instructions)
	if err := s.recipeRepository.CreateRecipe(ctx, recipe, ingredients, steps); err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe is a destructive replace, not a merge: children not
// resubmitted are gone after this call.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (*entities.Recipe, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	existing, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Servings = req.Servings
	existing.CookingTime = req.CookingTime
	existing.PrepTime = req.PrepTime
	existing.Cuisine = req.Cuisine
	existing.ImageURL = req.ImageURL
	existing.UpdatedAt = time.Now()

	ingredients, steps := buildChildren(recipeUUID, req.Ingredients, req.Instructions)
	if err := s.recipeRepository.ReplaceRecipe(ctx, existing, ingredients, steps); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteRecipe removes the record graph transactionally, then cleans up the
// image files. A missing or undeletable file never fails the delete; it is
// logged and the response stays successful.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	steps, err := s.recipeRepository.GetRecipeSteps(ctx, recipeUUID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipeCascade(ctx, recipeUUID); err != nil {
		return err
	}

	if recipe.ImageURL != "" {
		if err := s.storage.Remove(ctx, recipe.ImageURL); err != nil {
			log.Printf("error deleting recipe image %s: %v", recipe.ImageURL, err)
		}
	}
	for _, step := range steps {
		if step.ImageURL == "" {
			continue
		}
		if err := s.storage.Remove(ctx, step.ImageURL); err != nil {
			log.Printf("error deleting step image %s: %v", step.ImageURL, err)
		}
	}

	return nil
}

func (s *recipeService) GetCuisines(ctx context.Context) ([]entities.Cuisine, error) {
	return s.recipeRepository.ListCuisines(ctx)
}

// buildChildren assigns dense 1-based positions from the submitted order.
func buildChildren(recipeID uuid.UUID, ingredients []domain.IngredientRequest, instructions []domain.InstructionRequest) ([]entities.RecipeIngredient, []entities.RecipeStep) {
	ingredientRows := make([]entities.RecipeIngredient, 0, len(ingredients))
	for i, ingredient := range ingredients {
		ingredientRows = append(ingredientRows, entities.RecipeIngredient{
			ID:               uuid.New(),
			RecipeID:         recipeID,
			IngredientNumber: i + 1,
			IngredientName:   ingredient.Name,
			Quantity:         ingredient.Quantity,
		})
	}

	stepRows := make([]entities.RecipeStep, 0, len(instructions))
	for i, instruction := range instructions {
		stepRows = append(stepRows, entities.RecipeStep{
			ID:          uuid.New(),
			RecipeID:    recipeID,
			StepNumber:  i + 1,
			Description: instruction.Step,
			ImageURL:    instruction.Image,
		})
	}

	return ingredientRows, stepRows
}
