package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-api/app/domain"
	"blog-api/app/port"
)

// AuthorHandler handles author management HTTP requests
type AuthorHandler struct {
	authorUsecase port.AuthorUsecase
	logger        *slog.Logger
}

// NewAuthorHandler creates a new author handler
func NewAuthorHandler(authorUsecase port.AuthorUsecase, logger *slog.Logger) *AuthorHandler {
	return &AuthorHandler{
		authorUsecase: authorUsecase,
		logger:        logger,
	}
}

// CreateAuthor creates a new author
// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Param body body CreateAuthorRequest true "Author creation request"
// @Success 201 {object} domain.Author
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} DetailedErrorResponse
// @Router /authors [post]
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return handleValidationError(c, err)
	}

	author, err := h.authorUsecase.CreateAuthor(ctx, req.Name, req.Email)
	if err != nil {
		h.logger.Error("failed to create author", "email", req.Email, "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, author)
}

// ListAuthors lists all authors
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} domain.Author
// @Router /authors [get]
func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.authorUsecase.ListAuthors(ctx)
	if err != nil {
		h.logger.Error("failed to list authors", "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, authors)
}

// GetAuthor gets an author by ID
// @Summary Get author by ID
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} domain.Author
// @Failure 404 {object} DetailedErrorResponse
// @Router /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid author ID format",
		})
	}

	author, err := h.authorUsecase.GetAuthorByID(ctx, authorID)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, author)
}

// UpdateAuthor applies a partial or full update to an author
// @Summary Update author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "Author ID"
// @Param body body UpdateAuthorRequest true "Author update request"
// @Success 200 {object} domain.Author
// @Failure 404 {object} DetailedErrorResponse
// @Failure 409 {object} DetailedErrorResponse
// @Router /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid author ID format",
		})
	}

	var req UpdateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return handleValidationError(c, err)
	}

	updates := domain.AuthorUpdates{
		Name:  req.Name,
		Email: req.Email,
	}

	author, err := h.authorUsecase.UpdateAuthor(ctx, authorID, updates)
	if err != nil {
		h.logger.Error("failed to update author", "author_id", authorID, "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, author)
}

// DeleteAuthor deletes an author and all posts the author owns
// @Summary Delete author
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} DetailedErrorResponse
// @Router /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid author ID format",
		})
	}

	if err := h.authorUsecase.DeleteAuthor(ctx, authorID); err != nil {
		h.logger.Error("failed to delete author", "author_id", authorID, "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "author and associated posts deleted successfully",
	})
}

// ListAuthorPosts lists the posts owned by an author
// @Summary List posts of author
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {array} domain.Post
// @Failure 404 {object} DetailedErrorResponse
// @Router /authors/{id}/posts [get]
func (h *AuthorHandler) ListAuthorPosts(c echo.Context) error {
	ctx := c.Request().Context()

	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid author ID format",
		})
	}

	posts, err := h.authorUsecase.ListAuthorPosts(ctx, authorID)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// Request types

type CreateAuthorRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateAuthorRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
