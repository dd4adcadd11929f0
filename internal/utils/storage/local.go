package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps images on disk under baseDir/{recipe,recipestep} and
// serves them through the /images static mount.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	for _, kind := range []string{KindRecipe, KindRecipeStep} {
		if err := os.MkdirAll(filepath.Join(baseDir, kind), os.ModePerm); err != nil {
			return nil, fmt.Errorf("creating image directory: %w", err)
		}
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (s *LocalStorage) Save(_ context.Context, kind string, filename string, r io.Reader, _ int64) (string, error) {
	dst := filepath.Join(s.baseDir, kind, filename)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", err
	}
	return fmt.Sprintf("/images/%s/%s", kind, filename), nil
}

func (s *LocalStorage) Remove(_ context.Context, imageURL string) error {
	rel := strings.TrimPrefix(imageURL, "/images/")
	if rel == "" || rel == imageURL {
		return nil
	}
	kind, filename := filepath.Split(rel)
	// basename only, the URL is untrusted input
	kind = filepath.Base(strings.TrimSuffix(kind, "/"))
	filename = filepath.Base(filename)
	if kind == "." || kind == ".." || filename == "." || filename == ".." {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, kind, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
