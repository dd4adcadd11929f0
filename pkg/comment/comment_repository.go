package comment

import (
	"Recipe-Share-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentsWithAuthor(ctx context.Context, recipeID uuid.UUID) ([]CommentWithAuthor, error)
		CountComments(ctx context.Context, recipeID uuid.UUID) (int64, error)
		DeleteComment(ctx context.Context, commentID uuid.UUID) (int64, error)
		RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error)
	}

	commentRepository struct {
		db *gorm.DB
	}

	CommentWithAuthor struct {
		ID             uuid.UUID
		RecipeID       uuid.UUID
		Content        string
		CreatedAt      time.Time
		AuthorUsername string
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentsWithAuthor(ctx context.Context, recipeID uuid.UUID) ([]CommentWithAuthor, error) {
	var comments []CommentWithAuthor
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Select(`comments.id, comments.recipe_id, comments.content, comments.created_at,
			COALESCE(users.username, '') AS author_username`).
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.recipe_id = ?", recipeID).
		Order("comments.created_at DESC").
		Scan(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountComments(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&entities.Comment{})
	return result.RowsAffected, result.Error
}

func (r *commentRepository) RecipeExists(ctx context.Context, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
