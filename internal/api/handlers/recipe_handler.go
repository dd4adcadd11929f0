package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipeSteps(c *fiber.Ctx) error
		GetRecipeIngredients(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error
		GetHomeFeed(c *fiber.Ctx) error
		GetRecipeOverview(c *fiber.Ctx) error
		GetEditDetail(c *fiber.Ctx) error
		GetCuisines(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func queryFromCtx(c *fiber.Ctx) domain.RecipeQuery {
	return domain.RecipeQuery{
		Search:  c.Query("search"),
		SortBy:  c.Query("sortBy"),
		Cuisine: c.Query("cuisine"),
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.ListRecipes(c.Context(), queryFromCtx(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}
	return c.JSON(recipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	userID := c.Query("user_id")

	rec, averageRating, userRating, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return c.JSON(fiber.Map{
		"recipe":        rec,
		"averageRating": averageRating,
		"userRating":    userRating,
	})
}

func (h *recipeHandler) GetRecipeSteps(c *fiber.Ctx) error {
	steps, err := h.recipeService.GetRecipeSteps(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return c.JSON(steps)
}

func (h *recipeHandler) GetRecipeIngredients(c *fiber.Ctx) error {
	ingredients, err := h.recipeService.GetRecipeIngredients(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return c.JSON(ingredients)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrParseUUID)
	}

	recipes, err := h.recipeService.ListMyRecipes(c.Context(), userID, queryFromCtx(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}
	return c.JSON(recipes)
}

func (h *recipeHandler) GetHomeFeed(c *fiber.Ctx) error {
	feed, err := h.recipeService.GetHomeFeed(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    feed,
	})
}

func (h *recipeHandler) GetRecipeOverview(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipeOverview(c.Context(), queryFromCtx(c))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    recipes,
	})
}

func (h *recipeHandler) GetEditDetail(c *fiber.Ctx) error {
	rec, ingredients, steps, err := h.recipeService.GetEditDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return c.JSON(fiber.Map{
		"recipe":      rec,
		"ingredients": ingredients,
		"steps":       steps,
	})
}

func (h *recipeHandler) GetCuisines(c *fiber.Ctx) error {
	cuisines, err := h.recipeService.GetCuisines(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRecipes, err)
	}
	return c.JSON(cuisines)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	rec, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, rec, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	rec, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return c.JSON(fiber.Map{
		"message": domain.MessageSuccessUpdateRecipe,
		"recipe":  rec,
	})
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteRecipe, err)
	}

	return c.JSON(fiber.Map{
		"message":  domain.MessageSuccessDeleteRecipe,
		"recipeId": recipeID,
	})
}
