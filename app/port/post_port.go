package port

//go:generate mockgen -source=post_port.go -destination=../mocks/mock_post_port.go

import (
	"context"

	"blog-api/app/domain"
)

// PostUsecase defines post management business logic interface
type PostUsecase interface {
	// Post management
	CreatePost(ctx context.Context, title, content string, authorID uint) (*domain.Post, error)
	GetPostByID(ctx context.Context, postID uint) (*domain.Post, error)
	UpdatePost(ctx context.Context, postID uint, updates domain.PostUpdates) (*domain.Post, error)
	DeletePost(ctx context.Context, postID uint) error

	// Post queries
	ListPosts(ctx context.Context, authorID *uint) ([]*domain.Post, error)
}

// PostGateway defines post gateway interface
type PostGateway interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	GetPostByID(ctx context.Context, postID uint) (*domain.Post, error)
	UpdatePost(ctx context.Context, post *domain.Post) error
	DeletePost(ctx context.Context, postID uint) error
	ListPosts(ctx context.Context, authorID *uint) ([]*domain.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID uint) ([]*domain.Post, error)
}

// PostRepositoryPort defines post data access interface
type PostRepositoryPort interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, postID uint) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, postID uint) error
	List(ctx context.Context, authorID *uint) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*domain.Post, error)
}
