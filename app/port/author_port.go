package port

//go:generate mockgen -source=author_port.go -destination=../mocks/mock_author_port.go

import (
	"context"

	"blog-api/app/domain"
)

// AuthorUsecase defines author management business logic interface
type AuthorUsecase interface {
	// Author management
	CreateAuthor(ctx context.Context, name, email string) (*domain.Author, error)
	GetAuthorByID(ctx context.Context, authorID uint) (*domain.Author, error)
	UpdateAuthor(ctx context.Context, authorID uint, updates domain.AuthorUpdates) (*domain.Author, error)
	DeleteAuthor(ctx context.Context, authorID uint) error

	// Author queries
	ListAuthors(ctx context.Context) ([]*domain.Author, error)
	ListAuthorPosts(ctx context.Context, authorID uint) ([]*domain.Post, error)
}

// AuthorGateway defines author gateway interface
type AuthorGateway interface {
	CreateAuthor(ctx context.Context, author *domain.Author) error
	GetAuthorByID(ctx context.Context, authorID uint) (*domain.Author, error)
	GetAuthorByEmail(ctx context.Context, email string) (*domain.Author, error)
	UpdateAuthor(ctx context.Context, author *domain.Author) error
	DeleteAuthor(ctx context.Context, authorID uint) error
	ListAuthors(ctx context.Context) ([]*domain.Author, error)
}

// AuthorRepositoryPort defines author data access interface
type AuthorRepositoryPort interface {
	Create(ctx context.Context, author *domain.Author) error
	GetByID(ctx context.Context, authorID uint) (*domain.Author, error)
	GetByEmail(ctx context.Context, email string) (*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, authorID uint) error
	List(ctx context.Context) ([]*domain.Author, error)
}
