package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"blog-api/app/domain"
	"blog-api/app/port"
)

// AuthorGateway implements port.AuthorGateway interface
// It acts as an anti-corruption layer between the domain and author repository
type AuthorGateway struct {
	authorRepo port.AuthorRepositoryPort
	logger     *slog.Logger
}

// NewAuthorGateway creates a new AuthorGateway instance
func NewAuthorGateway(authorRepo port.AuthorRepositoryPort, logger *slog.Logger) *AuthorGateway {
	return &AuthorGateway{
		authorRepo: authorRepo,
		logger:     logger.With("component", "author_gateway"),
	}
}

// CreateAuthor creates a new author in the repository
func (g *AuthorGateway) CreateAuthor(ctx context.Context, author *domain.Author) error {
	g.logger.Info("creating author", "email", author.Email)

	if err := g.authorRepo.Create(ctx, author); err != nil {
		g.logger.Error("failed to create author",
			"email", author.Email,
			"error", err)
		return fmt.Errorf("failed to create author: %w", err)
	}

	g.logger.Info("author created successfully",
		"author_id", author.ID,
		"email", author.Email)

	return nil
}

// GetAuthorByID retrieves an author by ID
func (g *AuthorGateway) GetAuthorByID(ctx context.Context, authorID uint) (*domain.Author, error) {
	author, err := g.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		g.logger.Error("failed to retrieve author by ID",
			"author_id", authorID,
			"error", err)
		return nil, fmt.Errorf("failed to retrieve author by ID: %w", err)
	}

	return author, nil
}

// GetAuthorByEmail retrieves an author by email
func (g *AuthorGateway) GetAuthorByEmail(ctx context.Context, email string) (*domain.Author, error) {
	author, err := g.authorRepo.GetByEmail(ctx, email)
	if err != nil {
		g.logger.Error("failed to retrieve author by email",
			"email", email,
			"error", err)
		return nil, fmt.Errorf("failed to retrieve author by email: %w", err)
	}

	return author, nil
}

// UpdateAuthor updates an existing author
func (g *AuthorGateway) UpdateAuthor(ctx context.Context, author *domain.Author) error {
	g.logger.Info("updating author",
		"author_id", author.ID,
		"email", author.Email)

	if err := g.authorRepo.Update(ctx, author); err != nil {
		g.logger.Error("failed to update author",
			"author_id", author.ID,
			"error", err)
		return fmt.Errorf("failed to update author: %w", err)
	}

	g.logger.Info("author updated successfully", "author_id", author.ID)

	return nil
}

// DeleteAuthor deletes an author by ID
func (g *AuthorGateway) DeleteAuthor(ctx context.Context, authorID uint) error {
	g.logger.Info("deleting author", "author_id", authorID)

	if err := g.authorRepo.Delete(ctx, authorID); err != nil {
		g.logger.Error("failed to delete author",
			"author_id", authorID,
			"error", err)
		return fmt.Errorf("failed to delete author: %w", err)
	}

	g.logger.Info("author deleted successfully", "author_id", authorID)

	return nil
}

// ListAuthors retrieves all authors
func (g *AuthorGateway) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	authors, err := g.authorRepo.List(ctx)
	if err != nil {
		g.logger.Error("failed to list authors", "error", err)
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	g.logger.Info("authors retrieved successfully", "count", len(authors))

	return authors, nil
}
