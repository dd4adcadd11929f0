package rating

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	RatingService interface {
		RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest) error
		GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRatingResponse, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

func (s *ratingService) RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.Rating < 1 || req.Rating > 5 {
		return domain.ErrRatingOutOfRange
	}

	exists, err := s.ratingRepository.RecipeExists(ctx, recipeUUID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	now := time.Now()
	rating := &entities.Rating{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Rating:   req.Rating,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	return s.ratingRepository.UpsertRating(ctx, rating)
}

func (s *ratingService) GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRatingResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeRatingResponse{}, domain.ErrParseUUID
	}

	average, total, err := s.ratingRepository.GetRecipeRatingStats(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeRatingResponse{}, err
	}

	return domain.RecipeRatingResponse{
		// one decimal place for display, "0.0" when nobody has rated;
		// math.Round keeps .x5 averages rounding up (3.25 -> "3.3")
		AverageRating: strconv.FormatFloat(math.Round(average*10)/10, 'f', 1, 64),
		TotalRatings:  total,
	}, nil
}
