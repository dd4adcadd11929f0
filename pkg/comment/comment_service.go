package comment

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	CommentService interface {
		AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest) error
		GetComments(ctx context.Context, recipeID string) (domain.CommentListResponse, error)
		DeleteComment(ctx context.Context, commentID string) error
	}

	commentService struct {
		commentRepository CommentRepository
	}
)

func NewCommentService(commentRepository CommentRepository) CommentService {
	return &commentService{commentRepository: commentRepository}
}

func (s *commentService) AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	exists, err := s.commentRepository.RecipeExists(ctx, recipeUUID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	now := time.Now()
	comment := &entities.Comment{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Content:  req.Content,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	return s.commentRepository.CreateComment(ctx, comment)
}

func (s *commentService) GetComments(ctx context.Context, recipeID string) (domain.CommentListResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CommentListResponse{}, domain.ErrParseUUID
	}

	rows, err := s.commentRepository.GetCommentsWithAuthor(ctx, recipeUUID)
	if err != nil {
		return domain.CommentListResponse{}, err
	}

	total, err := s.commentRepository.CountComments(ctx, recipeUUID)
	if err != nil {
		return domain.CommentListResponse{}, err
	}

	comments := make([]domain.CommentResponse, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.CommentResponse{
			ID:        row.ID.String(),
			RecipeID:  row.RecipeID.String(),
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Author:    domain.Author{Username: row.AuthorUsername},
		})
	}

	return domain.CommentListResponse{
		Comments:      comments,
		TotalComments: total,
	}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return domain.ErrParseUUID
	}

	affected, err := s.commentRepository.DeleteComment(ctx, commentUUID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
