package favorite

import (
	"Recipe-Share-Backend/domain"
	"context"

	"github.com/google/uuid"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		RemoveFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		GetFavorites(ctx context.Context, userID string) ([]domain.RecipeSummary, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepository: favoriteRepository}
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	exists, err := s.favoriteRepository.RecipeExists(ctx, recipeUUID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	return s.favoriteRepository.AddFavorite(ctx, userUUID, recipeUUID)
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.favoriteRepository.RemoveFavorite(ctx, userUUID, recipeUUID)
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID string) ([]domain.RecipeSummary, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.favoriteRepository.GetFavoriteSummaries(ctx, userUUID)
}
