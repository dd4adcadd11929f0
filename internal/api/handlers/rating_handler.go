package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		RateRecipe(c *fiber.Ctx) error
		GetRecipeRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) RateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	if err := h.ratingService.RateRecipe(c.Context(), recipeID, *req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedRateRecipe, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": domain.MessageSuccessRateRecipe,
	})
}

func (h *ratingHandler) GetRecipeRating(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRecipeRating(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRating, err)
	}
	return c.JSON(res)
}
