package domain

var (
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"
	MessageSuccessGetFavorites   = "success get favorite recipes"
	MessageFailedAddFavorite     = "failed to add favorite"
	MessageFailedRemoveFavorite  = "failed to remove favorite"
	MessageFailedGetFavorites    = "failed to get favorite recipes"
)

type FavoriteRequest struct {
	RecipeID string `json:"recipe_id" validate:"required,uuid"`
}
