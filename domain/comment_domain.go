package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddComment    = "comment added successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"
	MessageFailedAddComment     = "failed to add comment"
	MessageFailedGetComments    = "failed to get comments"
	MessageFailedDeleteComment  = "failed to delete comment"

	ErrCommentNotFound = errors.New("comment not found")
)

type (
	AddCommentRequest struct {
		UserID  string `json:"user_id" validate:"required,uuid"`
		Content string `json:"content" validate:"required"`
	}

	CommentResponse struct {
		ID        string    `json:"_id"`
		RecipeID  string    `json:"recipe_id"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
		Author    Author    `json:"user_id"`
	}

	CommentListResponse struct {
		Comments      []CommentResponse `json:"comments"`
		TotalComments int64             `json:"totalComments"`
	}
)
