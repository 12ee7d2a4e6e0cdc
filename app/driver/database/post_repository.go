package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"blog-api/app/domain"
	"blog-api/app/metrics"
)

// PostRepository handles post persistence through GORM
type PostRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB, logger *slog.Logger) *PostRepository {
	return &PostRepository{
		db:     db,
		logger: logger.With("component", "post_repository"),
	}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	if err := r.db.WithContext(ctx).Omit("Author").Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrInvalidAuthorReference
		}
		r.logger.Error("Failed to create post", "author_id", post.AuthorID, "error", err)
		metrics.RecordDBError("post_create", "query_failed")
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID with its author eagerly loaded
func (r *PostRepository) GetByID(ctx context.Context, postID uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		r.logger.Error("Failed to get post by ID", "post_id", postID, "error", err)
		metrics.RecordDBError("post_get", "query_failed")
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// Update persists changes to an existing post. Column updates are used
// instead of Save, which would insert a fresh row when the post was
// deleted concurrently.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	updates := map[string]interface{}{
		"title":      post.Title,
		"content":    post.Content,
		"author_id":  post.AuthorID,
		"updated_at": post.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Model(&domain.Post{}).Where("id = ?", post.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domain.ErrInvalidAuthorReference
		}
		r.logger.Error("Failed to update post", "post_id", post.ID, "error", result.Error)
		metrics.RecordDBError("post_update", "query_failed")
		return fmt.Errorf("failed to update post: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, postID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Post{}, postID)
	if result.Error != nil {
		r.logger.Error("Failed to delete post", "post_id", postID, "error", result.Error)
		metrics.RecordDBError("post_delete", "query_failed")
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

// List retrieves posts in insertion order with authors eagerly loaded.
// A single preload query avoids the N+1 author lookups a per-post
// fetch would cause. Passing a non-nil authorID narrows the result to
// that author's posts.
func (r *PostRepository) List(ctx context.Context, authorID *uint) ([]*domain.Post, error) {
	query := r.db.WithContext(ctx).Preload("Author").Order("id")
	if authorID != nil {
		query = query.Where("author_id = ?", *authorID)
	}

	// Empty result marshals as [] rather than null
	posts := make([]*domain.Post, 0)
	if err := query.Find(&posts).Error; err != nil {
		r.logger.Error("Failed to list posts", "error", err)
		metrics.RecordDBError("post_list", "query_failed")
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListByAuthor retrieves the posts of one author without loading the
// author association
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id").Find(&posts).Error; err != nil {
		r.logger.Error("Failed to list posts by author", "author_id", authorID, "error", err)
		metrics.RecordDBError("post_list_by_author", "query_failed")
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}

	return posts, nil
}
