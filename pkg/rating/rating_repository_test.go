package rating

import (
	"Recipe-Share-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.Rating{},
	))
	return db
}

func seedRecipe(t *testing.T, db *gorm.DB) entities.Recipe {
	t.Helper()

	now := time.Now()
	recipe := entities.Recipe{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Title:   "Nasi Goreng",
		Cuisine: "Indonesian",
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	require.NoError(t, db.Create(&recipe).Error)
	return recipe
}

func newRating(recipeID, userID uuid.UUID, value int) *entities.Rating {
	now := time.Now()
	return &entities.Rating{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   value,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestUpsertRating_InsertsThenUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db)
	userID := uuid.New()

	require.NoError(t, repo.UpsertRating(ctx, newRating(recipe.ID, userID, 4)))
	require.NoError(t, repo.UpsertRating(ctx, newRating(recipe.ID, userID, 2)))

	var ratings []entities.Rating
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Find(&ratings).Error)
	require.Len(t, ratings, 1)
	assert.Equal(t, 2, ratings[0].Rating)
	assert.Equal(t, userID, ratings[0].UserID)
}

func TestUpsertRating_DifferentUsersGetSeparateRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db)

	require.NoError(t, repo.UpsertRating(ctx, newRating(recipe.ID, uuid.New(), 5)))
	require.NoError(t, repo.UpsertRating(ctx, newRating(recipe.ID, uuid.New(), 3)))

	var count int64
	require.NoError(t, db.Model(&entities.Rating{}).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetRecipeRatingStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db)

	average, total, err := repo.GetRecipeRatingStats(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, average)
	assert.Zero(t, total)

	for _, value := range []int{4, 5, 3} {
		require.NoError(t, repo.UpsertRating(ctx, newRating(recipe.ID, uuid.New(), value)))
	}

	average, total, err = repo.GetRecipeRatingStats(ctx, recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, average, 0.0001)
	assert.EqualValues(t, 3, total)
}

func TestGetUserRating(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db)
	userID := uuid.New()

	got, err := repo.GetUserRating(ctx, recipe.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.UpsertRating(ctx, newRating(recipe.ID, userID, 4)))

	got, err = repo.GetUserRating(ctx, recipe.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)
}

func TestRecipeExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db)

	exists, err := repo.RecipeExists(ctx, recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.RecipeExists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}
