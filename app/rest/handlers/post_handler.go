package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blog-api/app/domain"
	"blog-api/app/port"
)

// PostHandler handles post management HTTP requests
type PostHandler struct {
	postUsecase port.PostUsecase
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postUsecase port.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		logger:      logger,
	}
}

// CreatePost creates a new post for an existing author
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param body body CreatePostRequest true "Post creation request"
// @Success 201 {object} domain.Post
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} DetailedErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return handleValidationError(c, err)
	}

	post, err := h.postUsecase.CreatePost(ctx, req.Title, req.Content, req.AuthorID)
	if err != nil {
		h.logger.Error("failed to create post", "author_id", req.AuthorID, "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, post)
}

// ListPosts lists posts with their authors embedded, optionally
// filtered by the author_id query parameter
// @Summary List posts
// @Tags posts
// @Produce json
// @Param author_id query int false "Filter by author ID"
// @Success 200 {array} domain.Post
// @Failure 400 {object} ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	ctx := c.Request().Context()

	var authorID *uint
	if raw := c.QueryParam("author_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid author_id query parameter",
			})
		}
		id := uint(parsed)
		authorID = &id
	}

	posts, err := h.postUsecase.ListPosts(ctx, authorID)
	if err != nil {
		h.logger.Error("failed to list posts", "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost gets a post by ID with its author embedded
// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} domain.Post
// @Failure 404 {object} DetailedErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid post ID format",
		})
	}

	post, err := h.postUsecase.GetPostByID(ctx, postID)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, post)
}

// UpdatePost applies a partial or full update to a post
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body UpdatePostRequest true "Post update request"
// @Success 200 {object} domain.Post
// @Failure 404 {object} DetailedErrorResponse
// @Failure 422 {object} DetailedErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid post ID format",
		})
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return handleValidationError(c, err)
	}

	updates := domain.PostUpdates{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}

	post, err := h.postUsecase.UpdatePost(ctx, postID, updates)
	if err != nil {
		h.logger.Error("failed to update post", "post_id", postID, "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} DetailedErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid post ID format",
		})
	}

	if err := h.postUsecase.DeletePost(ctx, postID); err != nil {
		h.logger.Error("failed to delete post", "post_id", postID, "error", err)
		return handleDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "post deleted successfully",
	})
}

// Request types

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,notblank,max=200"`
	Content  string `json:"content" validate:"required,notblank"`
	AuthorID uint   `json:"author_id" validate:"required,gt=0"`
}

type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Content  *string `json:"content,omitempty" validate:"omitempty,notblank"`
	AuthorID *uint   `json:"author_id,omitempty" validate:"omitempty,gt=0"`
}
