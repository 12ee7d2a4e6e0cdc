package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"blog-api/app/domain"
	"blog-api/app/port"
)

// PostGateway implements port.PostGateway interface
// It acts as an anti-corruption layer between the domain and post repository
type PostGateway struct {
	postRepo port.PostRepositoryPort
	logger   *slog.Logger
}

// NewPostGateway creates a new PostGateway instance
func NewPostGateway(postRepo port.PostRepositoryPort, logger *slog.Logger) *PostGateway {
	return &PostGateway{
		postRepo: postRepo,
		logger:   logger.With("component", "post_gateway"),
	}
}

// CreatePost creates a new post in the repository
func (g *PostGateway) CreatePost(ctx context.Context, post *domain.Post) error {
	g.logger.Info("creating post",
		"title", post.Title,
		"author_id", post.AuthorID)

	if err := g.postRepo.Create(ctx, post); err != nil {
		g.logger.Error("failed to create post",
			"author_id", post.AuthorID,
			"error", err)
		return fmt.Errorf("failed to create post: %w", err)
	}

	g.logger.Info("post created successfully",
		"post_id", post.ID,
		"author_id", post.AuthorID)

	return nil
}

// GetPostByID retrieves a post by ID with its author embedded
func (g *PostGateway) GetPostByID(ctx context.Context, postID uint) (*domain.Post, error) {
	post, err := g.postRepo.GetByID(ctx, postID)
	if err != nil {
		g.logger.Error("failed to retrieve post by ID",
			"post_id", postID,
			"error", err)
		return nil, fmt.Errorf("failed to retrieve post by ID: %w", err)
	}

	return post, nil
}

// UpdatePost updates an existing post
func (g *PostGateway) UpdatePost(ctx context.Context, post *domain.Post) error {
	g.logger.Info("updating post",
		"post_id", post.ID,
		"author_id", post.AuthorID)

	if err := g.postRepo.Update(ctx, post); err != nil {
		g.logger.Error("failed to update post",
			"post_id", post.ID,
			"error", err)
		return fmt.Errorf("failed to update post: %w", err)
	}

	g.logger.Info("post updated successfully", "post_id", post.ID)

	return nil
}

// DeletePost deletes a post by ID
func (g *PostGateway) DeletePost(ctx context.Context, postID uint) error {
	g.logger.Info("deleting post", "post_id", postID)

	if err := g.postRepo.Delete(ctx, postID); err != nil {
		g.logger.Error("failed to delete post",
			"post_id", postID,
			"error", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	g.logger.Info("post deleted successfully", "post_id", postID)

	return nil
}

// ListPosts retrieves posts with their authors embedded, optionally
// narrowed to a single author
func (g *PostGateway) ListPosts(ctx context.Context, authorID *uint) ([]*domain.Post, error) {
	posts, err := g.postRepo.List(ctx, authorID)
	if err != nil {
		g.logger.Error("failed to list posts", "error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	g.logger.Info("posts retrieved successfully", "count", len(posts))

	return posts, nil
}

// ListPostsByAuthor retrieves the posts of one author
func (g *PostGateway) ListPostsByAuthor(ctx context.Context, authorID uint) ([]*domain.Post, error) {
	posts, err := g.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		g.logger.Error("failed to list posts by author",
			"author_id", authorID,
			"error", err)
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}

	return posts, nil
}
