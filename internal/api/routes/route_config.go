package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/pkg/jwt"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Config struct {
	App             *fiber.App
	DB              *gorm.DB
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	RatingHandler   handlers.RatingHandler
	CommentHandler  handlers.CommentHandler
	FavoriteHandler handlers.FavoriteHandler
	UploadHandler   handlers.UploadHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Static()
	c.Auth()
	c.Recipes()
	c.EditRecipe()
	c.Feeds()
	c.Favorites()
	c.Uploads()
	c.Health()
}

func (c *Config) Static() {
	if utils.GetConfig("STORAGE_DRIVER") == "local" {
		c.App.Static("/images", utils.GetConfig("UPLOAD_DIR"))
	}
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Get("/:id/steps", c.RecipeHandler.GetRecipeSteps)
		recipes.Get("/:id/ingredients", c.RecipeHandler.GetRecipeIngredients)
		recipes.Post("/:id/rate", c.RatingHandler.RateRecipe)
		recipes.Get("/:id/rate", c.RatingHandler.GetRecipeRating)
		recipes.Post("/:id/comment", c.CommentHandler.AddComment)
		recipes.Get("/:id/comments", c.CommentHandler.GetComments)
	}

	c.App.Get("/api/cuisines", c.RecipeHandler.GetCuisines)
}

func (c *Config) EditRecipe() {
	editRecipe := c.App.Group("/api/edit-recipe")
	{
		editRecipe.Get("/:id", c.RecipeHandler.GetEditDetail)
		editRecipe.Put("/:id", c.RecipeHandler.UpdateRecipe)
		editRecipe.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Feeds() {
	c.App.Get("/api/home", c.RecipeHandler.GetHomeFeed)
	c.App.Get("/api/myrecipes", c.RecipeHandler.GetMyRecipes)
	c.App.Get("/api/recipe-overview", c.RecipeHandler.GetRecipeOverview)
	c.App.Delete("/api/recipe-overview/comments/:commentId", c.CommentHandler.DeleteComment)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	{
		favorites.Post("", c.FavoriteHandler.AddFavorite)
		favorites.Delete("", c.FavoriteHandler.RemoveFavorite)
		favorites.Get("", c.FavoriteHandler.GetFavorites)
	}
}

func (c *Config) Uploads() {
	uploads := c.App.Group("/api/uploads")
	{
		uploads.Post("/recipe", c.UploadHandler.UploadRecipeImage)
		uploads.Post("/recipestep", c.UploadHandler.UploadStepImage)
	}
}

// Health reports liveness plus datastore connectivity; the ping is bounded
// so a hung database cannot hang the probe.
func (c *Config) Health() {
	c.App.Get("/api/health", func(ctx *fiber.Ctx) error {
		database := "connected"

		sqlDB, err := c.DB.DB()
		if err != nil {
			database = "disconnected"
		} else {
			pingCtx, cancel := context.WithTimeout(ctx.Context(), 2*time.Second)
			defer cancel()
			if err := sqlDB.PingContext(pingCtx); err != nil {
				database = "disconnected"
			}
		}

		return ctx.JSON(fiber.Map{
			"status":   "ok",
			"database": database,
		})
	})
}
