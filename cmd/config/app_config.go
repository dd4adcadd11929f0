package config

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/api/routes"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/comment"
	"Recipe-Share-Backend/pkg/favorite"
	"Recipe-Share-Backend/pkg/jwt"
	"Recipe-Share-Backend/pkg/rating"
	"Recipe-Share-Backend/pkg/recipe"
	"Recipe-Share-Backend/pkg/upload"
	"Recipe-Share-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// image storage
	store, err := NewStorage()
	if err != nil {
		return nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, ratingRepository, store)
	ratingService := rating.NewRatingService(ratingRepository)
	commentService := comment.NewCommentService(commentRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository)
	uploadService := upload.NewUploadService(store)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		DB:              db,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		RatingHandler:   ratingHandler,
		CommentHandler:  commentHandler,
		FavoriteHandler: favoriteHandler,
		UploadHandler:   uploadHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// NewStorage picks the image storage driver from config; local disk is the
// default.
func NewStorage() (storage.Storage, error) {
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		return storage.NewAwsS3()
	}
	return storage.NewLocalStorage(utils.GetConfig("UPLOAD_DIR"))
}
