package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	content := []byte("fake jpeg bytes")
	url, err := store.Save(ctx, KindRecipe, "123-456.jpg", strings.NewReader(string(content)), int64(len(content)))
	require.NoError(t, err)
	assert.Equal(t, "/images/recipe/123-456.jpg", url)

	onDisk, err := os.ReadFile(filepath.Join(dir, KindRecipe, "123-456.jpg"))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)

	require.NoError(t, store.Remove(ctx, url))
	_, err = os.Stat(filepath.Join(dir, KindRecipe, "123-456.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_RemoveToleratesMissingFiles(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "/images/recipe/never-existed.jpg"))
	assert.NoError(t, store.Remove(context.Background(), "not an image url"))
}

func TestLocalStorage_RemoveIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, store.Remove(context.Background(), "/images/../victim.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err, "files outside the image directories must survive")
}

func TestLocalStorage_KindsGetSeparateDirectories(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	urlRecipe, err := store.Save(ctx, KindRecipe, "a.jpg", strings.NewReader("x"), 1)
	require.NoError(t, err)
	urlStep, err := store.Save(ctx, KindRecipeStep, "a.jpg", strings.NewReader("y"), 1)
	require.NoError(t, err)

	assert.NotEqual(t, urlRecipe, urlStep)

	recipeBytes, err := os.ReadFile(filepath.Join(dir, KindRecipe, "a.jpg"))
	require.NoError(t, err)
	stepBytes, err := os.ReadFile(filepath.Join(dir, KindRecipeStep, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(recipeBytes))
	assert.Equal(t, "y", string(stepBytes))
}

func TestGenerateFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+-\d+\.jpg$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := GenerateFilename()
		assert.Regexp(t, pattern, name)
		seen[name] = true
	}
	// timestamp plus random suffix should essentially never collide
	assert.Greater(t, len(seen), 90)
}
