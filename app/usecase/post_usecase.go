package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blog-api/app/domain"
	"blog-api/app/port"
)

// PostUsecase implements post management business logic
type PostUsecase struct {
	postGateway   port.PostGateway
	authorGateway port.AuthorGateway
	logger        *slog.Logger
}

// NewPostUsecase creates a new post usecase
func NewPostUsecase(
	postGateway port.PostGateway,
	authorGateway port.AuthorGateway,
	logger *slog.Logger,
) *PostUsecase {
	return &PostUsecase{
		postGateway:   postGateway,
		authorGateway: authorGateway,
		logger:        logger,
	}
}

// CreatePost creates a new post owned by an existing author
func (u *PostUsecase) CreatePost(ctx context.Context, title, content string, authorID uint) (*domain.Post, error) {
	u.logger.Info("creating new post", "author_id", authorID)

	post, err := domain.NewPost(title, content, authorID)
	if err != nil {
		return nil, err
	}

	// The referenced author must exist at creation time. The foreign
	// key is the backstop against a concurrent author delete.
	author, err := u.authorGateway.GetAuthorByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, domain.ErrInvalidAuthorReference
		}
		return nil, fmt.Errorf("failed to check author: %w", err)
	}

	if err := u.postGateway.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Embed the owning author fetched for the existence check
	post.Author = author

	u.logger.Info("post created successfully",
		"post_id", post.ID,
		"author_id", post.AuthorID)

	return post, nil
}

// GetPostByID retrieves a single post with its author embedded
func (u *PostUsecase) GetPostByID(ctx context.Context, postID uint) (*domain.Post, error) {
	post, err := u.postGateway.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// UpdatePost applies a partial update to an existing post. A supplied
// author_id reassigns the post and must reference an existing author.
func (u *PostUsecase) UpdatePost(ctx context.Context, postID uint, updates domain.PostUpdates) (*domain.Post, error) {
	u.logger.Info("updating post", "post_id", postID)

	existing, err := u.postGateway.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing post: %w", err)
	}

	var newAuthor *domain.Author
	if updates.AuthorID != nil {
		newAuthor, err = u.authorGateway.GetAuthorByID(ctx, *updates.AuthorID)
		if err != nil {
			if errors.Is(err, domain.ErrAuthorNotFound) {
				return nil, domain.ErrInvalidAuthorReference
			}
			return nil, fmt.Errorf("failed to check author: %w", err)
		}
	}

	if err := existing.ApplyUpdates(updates); err != nil {
		return nil, err
	}

	if err := u.postGateway.UpdatePost(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	// Reassignment cleared the embedded author; restore it from the
	// existence check so the response carries the new owner.
	if newAuthor != nil {
		existing.Author = newAuthor
	}

	return existing, nil
}

// DeletePost removes a single post
func (u *PostUsecase) DeletePost(ctx context.Context, postID uint) error {
	u.logger.Info("deleting post", "post_id", postID)

	if err := u.postGateway.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

// ListPosts retrieves posts with their authors embedded, optionally
// filtered to one author
func (u *PostUsecase) ListPosts(ctx context.Context, authorID *uint) ([]*domain.Post, error) {
	posts, err := u.postGateway.ListPosts(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}
