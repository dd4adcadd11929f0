package recipe

import (
	"Recipe-Share-Backend/domain"
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
		&entities.Cuisine{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.FavoriteRecipe{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) entities.User {
	t.Helper()

	now := time.Now()
	user := entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedRecipeAt(t *testing.T, db *gorm.DB, userID uuid.UUID, title, cuisine string, createdAt time.Time) entities.Recipe {
	t.Helper()

	recipe := entities.Recipe{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: "a dish of " + title,
		Cuisine:     cuisine,
		Servings:    2,
		PrepTime:    10,
		CookingTime: 20,
		Timestamp: entities.Timestamp{
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
	require.NoError(t, db.Create(&recipe).Error)
	return recipe
}

func addRating(t *testing.T, db *gorm.DB, recipeID uuid.UUID, value int) {
	t.Helper()

	now := time.Now()
	require.NoError(t, db.Create(&entities.Rating{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   uuid.New(),
		Rating:   value,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}).Error)
}

func addComment(t *testing.T, db *gorm.DB, recipeID, userID uuid.UUID, content string) {
	t.Helper()

	now := time.Now()
	require.NoError(t, db.Create(&entities.Comment{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
		Content:  content,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}).Error)
}

func TestListRecipeSummaries_UnratedRecipeHasZeroAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	seedRecipeAt(t, db, author.ID, "Plain Rice", "Indonesian", time.Now())

	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{}, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Zero(t, summaries[0].AverageRating)
	assert.Zero(t, summaries[0].TotalRatings)
	assert.Zero(t, summaries[0].TotalComments)
	assert.Equal(t, "chef", summaries[0].AuthorUsername)
}

func TestListRecipeSummaries_AggregatesSurviveJoinFanOut(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	recipe := seedRecipeAt(t, db, author.ID, "Rendang", "Indonesian", time.Now())

	// 3 ratings x 2 comments fans out to 6 joined rows; the DISTINCT
	// counts and the average must not be inflated by that
	for _, value := range []int{4, 5, 3} {
		addRating(t, db, recipe.ID, value)
	}
	addComment(t, db, recipe.ID, author.ID, "first")
	addComment(t, db, recipe.ID, author.ID, "second")

	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{}, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.InDelta(t, 4.0, summaries[0].AverageRating, 0.0001)
	assert.EqualValues(t, 3, summaries[0].TotalRatings)
	assert.EqualValues(t, 2, summaries[0].TotalComments)
}

func TestListRecipeSummaries_SearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	base := time.Now().Add(-time.Hour)
	seedRecipeAt(t, db, author.ID, "Chicken Curry", "Indian", base)
	seedRecipeAt(t, db, author.ID, "Beef Stew", "French", base.Add(time.Minute))

	for _, term := range []string{"CURRY", "curry", "cHiCkEn"} {
		summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: term}, nil)
		require.NoError(t, err)
		require.Len(t, summaries, 1, "search %q", term)
		assert.Equal(t, "Chicken Curry", summaries[0].Title)
	}

	// description and cuisine are searched too
	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: "dish of beef"}, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Beef Stew", summaries[0].Title)

	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: "french"}, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Beef Stew", summaries[0].Title)
}

func TestListRecipeSummaries_CuisineFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	base := time.Now().Add(-time.Hour)
	seedRecipeAt(t, db, author.ID, "Sushi", "Japanese", base)
	seedRecipeAt(t, db, author.ID, "Ramen", "Japanese", base.Add(time.Minute))
	seedRecipeAt(t, db, author.ID, "Tacos", "Mexican", base.Add(2*time.Minute))

	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Cuisine: "Japanese"}, nil)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	// "All" is not a filter
	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Cuisine: domain.CuisineAll}, nil)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)

	// search and cuisine compose with AND
	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: "ramen", Cuisine: "Mexican"}, nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestListRecipeSummaries_SortOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	base := time.Now().Add(-time.Hour)
	first := seedRecipeAt(t, db, author.ID, "First", "Other", base)
	second := seedRecipeAt(t, db, author.ID, "Second", "Other", base.Add(time.Minute))
	third := seedRecipeAt(t, db, author.ID, "Third", "Other", base.Add(2*time.Minute))

	addRating(t, db, second.ID, 5)
	addRating(t, db, first.ID, 3)
	addRating(t, db, third.ID, 3)

	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{SortBy: domain.SortLatest}, nil)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, []string{"Third", "Second", "First"}, titlesOf(summaries))

	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{SortBy: domain.SortOldest}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Third"}, titlesOf(summaries))

	// highest average first; the 3.0 tie resolves by creation time
	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{SortBy: domain.SortRating}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Second", "First", "Third"}, titlesOf(summaries))
}

func TestListRecipeSummaries_FiltersByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	base := time.Now().Add(-time.Hour)
	seedRecipeAt(t, db, alice.ID, "Pancakes", "Other", base)
	seedRecipeAt(t, db, bob.ID, "Waffles", "Other", base.Add(time.Minute))

	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{}, &alice.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Pancakes", summaries[0].Title)
	assert.Equal(t, "alice", summaries[0].AuthorUsername)
}

func TestListRecipeSummaries_AuthorScopedSearchSkipsCuisine(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	seedRecipeAt(t, db, alice.ID, "Pancakes", "Breakfast", time.Now())

	// globally a cuisine term matches...
	summaries, err := repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: "breakfast"}, nil)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)

	// ...but the personal feed only searches title and description
	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: "breakfast"}, &alice.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	summaries, err = repo.ListRecipeSummaries(ctx, domain.RecipeQuery{Search: "pancake"}, &alice.ID)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func titlesOf(summaries []domain.RecipeSummary) []string {
	titles := make([]string, 0, len(summaries))
	for _, s := range summaries {
		titles = append(titles, s.Title)
	}
	return titles
}

func TestGetRecipeChildren_OrderedByPosition(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	recipe := seedRecipeAt(t, db, author.ID, "Soup", "Other", time.Now())

	// inserted out of order on purpose
	for _, n := range []int{3, 1, 2} {
		require.NoError(t, db.Create(&entities.RecipeIngredient{
			ID:               uuid.New(),
			RecipeID:         recipe.ID,
			IngredientNumber: n,
			IngredientName:   "ingredient",
			Quantity:         "1",
		}).Error)
		require.NoError(t, db.Create(&entities.RecipeStep{
			ID:          uuid.New(),
			RecipeID:    recipe.ID,
			StepNumber:  n,
			Description: "step",
		}).Error)
	}

	ingredients, err := repo.GetRecipeIngredients(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	for i, ing := range ingredients {
		assert.Equal(t, i+1, ing.IngredientNumber)
	}

	steps, err := repo.GetRecipeSteps(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, step := range steps {
		assert.Equal(t, i+1, step.StepNumber)
	}
}

func TestReplaceRecipe_DropsChildrenNotResubmitted(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	recipe := seedRecipeAt(t, db, author.ID, "Old Title", "Other", time.Now())

	require.NoError(t, db.Create(&entities.RecipeIngredient{
		ID: uuid.New(), RecipeID: recipe.ID, IngredientNumber: 1, IngredientName: "salt", Quantity: "1 tsp",
	}).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{
		ID: uuid.New(), RecipeID: recipe.ID, IngredientNumber: 2, IngredientName: "pepper", Quantity: "1 tsp",
	}).Error)
	require.NoError(t, db.Create(&entities.RecipeStep{
		ID: uuid.New(), RecipeID: recipe.ID, StepNumber: 1, Description: "mix",
	}).Error)

	recipe.Title = "New Title"
	recipe.UpdatedAt = time.Now()
	newIngredients := []entities.RecipeIngredient{{
		ID: uuid.New(), RecipeID: recipe.ID, IngredientNumber: 1, IngredientName: "sugar", Quantity: "2 tbsp",
	}}
	newSteps := []entities.RecipeStep{
		{ID: uuid.New(), RecipeID: recipe.ID, StepNumber: 1, Description: "stir"},
		{ID: uuid.New(), RecipeID: recipe.ID, StepNumber: 2, Description: "serve"},
	}

	require.NoError(t, repo.ReplaceRecipe(ctx, &recipe, newIngredients, newSteps))

	updated, err := repo.GetRecipeByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)

	ingredients, err := repo.GetRecipeIngredients(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "sugar", ingredients[0].IngredientName)

	steps, err := repo.GetRecipeSteps(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Len(t, steps, 2)
}

func TestDeleteRecipeCascade_RemovesEveryDependentRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "chef")
	recipe := seedRecipeAt(t, db, author.ID, "Doomed", "Other", time.Now())
	survivor := seedRecipeAt(t, db, author.ID, "Survivor", "Other", time.Now())

	for _, target := range []uuid.UUID{recipe.ID, survivor.ID} {
		require.NoError(t, db.Create(&entities.RecipeIngredient{
			ID: uuid.New(), RecipeID: target, IngredientNumber: 1, IngredientName: "x", Quantity: "1",
		}).Error)
		require.NoError(t, db.Create(&entities.RecipeStep{
			ID: uuid.New(), RecipeID: target, StepNumber: 1, Description: "x",
		}).Error)
		addRating(t, db, target, 4)
		addComment(t, db, target, author.ID, "nice")
		require.NoError(t, db.Create(&entities.FavoriteRecipe{
			ID: uuid.New(), UserID: author.ID, RecipeID: target, CreatedAt: time.Now(),
		}).Error)
	}

	require.NoError(t, repo.DeleteRecipeCascade(ctx, recipe.ID))

	_, err := repo.GetRecipeByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for _, model := range []any{
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.FavoriteRecipe{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, db.Model(model).Where("recipe_id = ?", survivor.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count, "unrelated recipe rows must survive")
	}
}

func TestListCuisines_SortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Mexican", "Indian", "Thai"} {
		require.NoError(t, db.Create(&entities.Cuisine{ID: uuid.New(), Name: name}).Error)
	}

	cuisines, err := repo.ListCuisines(ctx)
	require.NoError(t, err)
	require.Len(t, cuisines, 3)
	assert.Equal(t, "Indian", cuisines[0].Name)
	assert.Equal(t, "Mexican", cuisines[1].Name)
	assert.Equal(t, "Thai", cuisines[2].Name)
}
