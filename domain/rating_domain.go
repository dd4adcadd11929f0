package domain

import "errors"

var (
	MessageSuccessRateRecipe = "rating added/updated successfully"
	MessageFailedRateRecipe  = "failed to rate recipe"
	MessageFailedGetRating   = "failed to get rating"

	// Ratings are whole stars, 1 through 5; anything else is rejected
	// before it reaches storage.
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

type (
	RateRecipeRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Rating int    `json:"rating" validate:"required,min=1,max=5"`
	}

	RecipeRatingResponse struct {
		AverageRating string `json:"averageRating"`
		TotalRatings  int64  `json:"totalRatings"`
	}
)
