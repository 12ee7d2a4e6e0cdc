package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blog-api/app/domain"
	"blog-api/app/port"
)

// AuthorUsecase implements author management business logic
type AuthorUsecase struct {
	authorGateway port.AuthorGateway
	postGateway   port.PostGateway
	logger        *slog.Logger
}

// NewAuthorUsecase creates a new author usecase
func NewAuthorUsecase(
	authorGateway port.AuthorGateway,
	postGateway port.PostGateway,
	logger *slog.Logger,
) *AuthorUsecase {
	return &AuthorUsecase{
		authorGateway: authorGateway,
		postGateway:   postGateway,
		logger:        logger,
	}
}

// CreateAuthor creates a new author after checking email uniqueness
func (u *AuthorUsecase) CreateAuthor(ctx context.Context, name, email string) (*domain.Author, error) {
	u.logger.Info("creating new author", "email", email)

	author, err := domain.NewAuthor(name, email)
	if err != nil {
		return nil, err
	}

	// Email uniqueness pre-check. The unique index on the email column
	// is the backstop against concurrent inserts.
	existing, err := u.authorGateway.GetAuthorByEmail(ctx, author.Email)
	if err != nil && !errors.Is(err, domain.ErrAuthorNotFound) {
		return nil, fmt.Errorf("failed to check author email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAuthorEmailExists
	}

	if err := u.authorGateway.CreateAuthor(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	u.logger.Info("author created successfully",
		"author_id", author.ID,
		"email", author.Email)

	return author, nil
}

// GetAuthorByID retrieves a single author
func (u *AuthorUsecase) GetAuthorByID(ctx context.Context, authorID uint) (*domain.Author, error) {
	author, err := u.authorGateway.GetAuthorByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return author, nil
}

// UpdateAuthor applies a partial update to an existing author
func (u *AuthorUsecase) UpdateAuthor(ctx context.Context, authorID uint, updates domain.AuthorUpdates) (*domain.Author, error) {
	u.logger.Info("updating author", "author_id", authorID)

	existing, err := u.authorGateway.GetAuthorByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing author: %w", err)
	}

	// Uniqueness pre-check when the email is changing, excluding the
	// author itself so a no-op email update passes.
	if updates.Email != nil && *updates.Email != existing.Email {
		owner, err := u.authorGateway.GetAuthorByEmail(ctx, *updates.Email)
		if err != nil && !errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, fmt.Errorf("failed to check author email: %w", err)
		}
		if owner != nil && owner.ID != authorID {
			return nil, domain.ErrAuthorEmailExists
		}
	}

	if err := existing.ApplyUpdates(updates); err != nil {
		return nil, err
	}

	if err := u.authorGateway.UpdateAuthor(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return existing, nil
}

// DeleteAuthor removes an author. Posts owned by the author are
// removed by the ON DELETE CASCADE constraint, so no per-post deletes
// are issued here.
func (u *AuthorUsecase) DeleteAuthor(ctx context.Context, authorID uint) error {
	u.logger.Info("deleting author with owned posts", "author_id", authorID)

	if err := u.authorGateway.DeleteAuthor(ctx, authorID); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	return nil
}

// ListAuthors retrieves all authors in storage order
func (u *AuthorUsecase) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	authors, err := u.authorGateway.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

// ListAuthorPosts retrieves the posts of one author. Unknown author
// IDs are rejected rather than answered with an empty list, so a
// missing author and an author without posts are distinguishable.
func (u *AuthorUsecase) ListAuthorPosts(ctx context.Context, authorID uint) ([]*domain.Post, error) {
	if _, err := u.authorGateway.GetAuthorByID(ctx, authorID); err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	posts, err := u.postGateway.ListPostsByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	return posts, nil
}
