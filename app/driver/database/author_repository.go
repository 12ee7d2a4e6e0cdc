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

// AuthorRepository handles author persistence through GORM
type AuthorRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *gorm.DB, logger *slog.Logger) *AuthorRepository {
	return &AuthorRepository{
		db:     db,
		logger: logger.With("component", "author_repository"),
	}
}

// Create inserts a new author
func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAuthorEmailExists
		}
		r.logger.Error("Failed to create author", "email", author.Email, "error", err)
		metrics.RecordDBError("author_create", "query_failed")
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

// GetByID retrieves an author by ID
func (r *AuthorRepository) GetByID(ctx context.Context, authorID uint) (*domain.Author, error) {
	var author domain.Author
	if err := r.db.WithContext(ctx).First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		r.logger.Error("Failed to get author by ID", "author_id", authorID, "error", err)
		metrics.RecordDBError("author_get", "query_failed")
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &author, nil
}

// GetByEmail retrieves an author by email
func (r *AuthorRepository) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	var author domain.Author
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		r.logger.Error("Failed to get author by email", "email", email, "error", err)
		metrics.RecordDBError("author_get_by_email", "query_failed")
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &author, nil
}

// Update persists changes to an existing author. Column updates are
// used instead of Save, which would insert a fresh row when the author
// was deleted concurrently.
func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	updates := map[string]interface{}{
		"name":       author.Name,
		"email":      author.Email,
		"updated_at": author.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Model(&domain.Author{}).Where("id = ?", author.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrAuthorEmailExists
		}
		r.logger.Error("Failed to update author", "author_id", author.ID, "error", result.Error)
		metrics.RecordDBError("author_update", "query_failed")
		return fmt.Errorf("failed to update author: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrAuthorNotFound
	}

	return nil
}

// Delete removes an author. Posts owned by the author are removed by
// the ON DELETE CASCADE constraint on the posts table.
func (r *AuthorRepository) Delete(ctx context.Context, authorID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Author{}, authorID)
	if result.Error != nil {
		r.logger.Error("Failed to delete author", "author_id", authorID, "error", result.Error)
		metrics.RecordDBError("author_delete", "query_failed")
		return fmt.Errorf("failed to delete author: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrAuthorNotFound
	}

	return nil
}

// List retrieves all authors in insertion order
func (r *AuthorRepository) List(ctx context.Context) ([]*domain.Author, error) {
	// Empty result marshals as [] rather than null
	authors := make([]*domain.Author, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&authors).Error; err != nil {
		r.logger.Error("Failed to list authors", "error", err)
		metrics.RecordDBError("author_list", "query_failed")
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}
