package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/rating"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStorage records removals and can be told to fail them.
type fakeStorage struct {
	removed   []string
	removeErr error
}

func (f *fakeStorage) Save(_ context.Context, kind string, filename string, _ io.Reader, _ int64) (string, error) {
	return "/images/" + kind + "/" + filename, nil
}

func (f *fakeStorage) Remove(_ context.Context, imageURL string) error {
	f.removed = append(f.removed, imageURL)
	return f.removeErr
}

func TestCreateRecipe_AssignsDensePositionsFromSubmittedOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	service := NewRecipeService(repo, rating.NewRatingRepository(db), &fakeStorage{})
	ctx := context.Background()

	author := seedUser(t, db, "chef")

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Fried Rice",
		Description: "weeknight staple",
		Servings:    2,
		CookingTime: 15,
		PrepTime:    5,
		Cuisine:     "Indonesian",
		Ingredients: []domain.IngredientRequest{
			{Name: "rice", Quantity: "2 cups"},
			{Name: "egg", Quantity: "1"},
			{Name: "soy sauce", Quantity: "1 tbsp"},
		},
		Instructions: []domain.InstructionRequest{
			{Step: "heat the wok"},
			{Step: "fry everything"},
		},
	}, author.ID.String())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, author.ID, created.UserID)

	ingredients, err := repo.GetRecipeIngredients(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "rice", ingredients[0].IngredientName)
	assert.Equal(t, 1, ingredients[0].IngredientNumber)
	assert.Equal(t, "soy sauce", ingredients[2].IngredientName)
	assert.Equal(t, 3, ingredients[2].IngredientNumber)

	steps, err := repo.GetRecipeSteps(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].StepNumber)
	assert.Equal(t, "heat the wok", steps[0].Description)
}

func TestCreateRecipe_MalformedAuthorID(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db), rating.NewRatingRepository(db), &fakeStorage{})

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{Title: "x"}, "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdateRecipe_UnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db), rating.NewRatingRepository(db), &fakeStorage{})

	_, err := service.UpdateRecipe(context.Background(), uuid.NewString(), domain.UpdateRecipeRequest{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRecipe_CleansUpImageFilesBestEffort(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	store := &fakeStorage{}
	service := NewRecipeService(repo, rating.NewRatingRepository(db), store)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	recipe := seedRecipeAt(t, db, author.ID, "Doomed", "Other", time.Now())
	require.NoError(t, db.Model(&entities.Recipe{}).Where("id = ?", recipe.ID).
		Update("image_url", "/images/recipe/cover.jpg").Error)
	require.NoError(t, db.Create(&entities.RecipeStep{
		ID: uuid.New(), RecipeID: recipe.ID, StepNumber: 1,
		Description: "plate it", ImageURL: "/images/recipestep/plating.jpg",
	}).Error)

	// a failing file removal must not fail the delete
	store.removeErr = errors.New("disk on fire")

	require.NoError(t, service.DeleteRecipe(ctx, recipe.ID.String()))

	_, err := repo.GetRecipeByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ElementsMatch(t,
		[]string{"/images/recipe/cover.jpg", "/images/recipestep/plating.jpg"},
		store.removed)
}

func TestDeleteRecipe_UnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db), rating.NewRatingRepository(db), &fakeStorage{})

	err := service.DeleteRecipe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetail(t *testing.T) {
	db := newTestDB(t)
	ratingRepo := rating.NewRatingRepository(db)
	service := NewRecipeService(NewRecipeRepository(db), ratingRepo, &fakeStorage{})
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	recipe := seedRecipeAt(t, db, author.ID, "Laksa", "Malaysian", time.Now())
	addRating(t, db, recipe.ID, 5)
	addRating(t, db, recipe.ID, 4)

	_, _, _, err := service.GetRecipeDetail(ctx, "not-a-uuid", "")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, _, _, err = service.GetRecipeDetail(ctx, uuid.NewString(), "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	got, average, userRating, err := service.GetRecipeDetail(ctx, recipe.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, got.ID)
	assert.InDelta(t, 4.5, average, 0.0001)
	assert.Nil(t, userRating, "anonymous viewers have no rating of their own")

	viewer := uuid.New()
	now := time.Now()
	require.NoError(t, db.Create(&entities.Rating{
		ID: uuid.New(), RecipeID: recipe.ID, UserID: viewer, Rating: 3,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}).Error)

	_, _, userRating, err = service.GetRecipeDetail(ctx, recipe.ID.String(), viewer.String())
	require.NoError(t, err)
	require.NotNil(t, userRating)
	assert.Equal(t, 3, *userRating)
}

func TestGetHomeFeed_RatingOnlyOnTopRatedList(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db), rating.NewRatingRepository(db), &fakeStorage{})
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	base := time.Now().Add(-time.Hour)
	older := seedRecipeAt(t, db, author.ID, "Older", "Other", base)
	newer := seedRecipeAt(t, db, author.ID, "Newer", "Other", base.Add(time.Minute))
	addRating(t, db, older.ID, 5)
	addRating(t, db, newer.ID, 2)

	feed, err := service.GetHomeFeed(ctx)
	require.NoError(t, err)

	require.Len(t, feed.LatestRecipes, 2)
	assert.Equal(t, "Newer", feed.LatestRecipes[0].Title)
	assert.Nil(t, feed.LatestRecipes[0].AverageRating)
	assert.Equal(t, "chef", feed.LatestRecipes[0].Author.Username)

	require.Len(t, feed.TopRatedRecipes, 2)
	assert.Equal(t, "Older", feed.TopRatedRecipes[0].Title)
	require.NotNil(t, feed.TopRatedRecipes[0].AverageRating)
	assert.InDelta(t, 5.0, *feed.TopRatedRecipes[0].AverageRating, 0.0001)
}

func TestGetHomeFeed_UnratedTopRatedEntryStillEmitsAverage(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db), rating.NewRatingRepository(db), &fakeStorage{})
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	seedRecipeAt(t, db, author.ID, "Unrated", "Other", time.Now())

	feed, err := service.GetHomeFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed.TopRatedRecipes, 1)

	require.NotNil(t, feed.TopRatedRecipes[0].AverageRating)
	assert.Zero(t, *feed.TopRatedRecipes[0].AverageRating)

	// the key must survive serialization even when the value is zero
	topRated, err := json.Marshal(feed.TopRatedRecipes[0])
	require.NoError(t, err)
	assert.Contains(t, string(topRated), `"averageRating":0`)

	latest, err := json.Marshal(feed.LatestRecipes[0])
	require.NoError(t, err)
	assert.NotContains(t, string(latest), "averageRating")
}
