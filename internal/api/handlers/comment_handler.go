package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/comment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		AddComment(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) AddComment(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	if err := h.commentService.AddComment(c.Context(), recipeID, *req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddComment, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": domain.MessageSuccessAddComment,
	})
}

func (h *commentHandler) GetComments(c *fiber.Ctx) error {
	res, err := h.commentService.GetComments(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetComments, err)
	}
	return c.JSON(res)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.commentService.DeleteComment(c.Context(), c.Params("commentId")); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteComment, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": domain.MessageSuccessDeleteComment,
	})
}
