package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/app/domain"
)

func newTestPostRepository(t *testing.T) (*PostRepository, *AuthorRepository) {
	t.Helper()

	db := setupTestDB(t)
	return NewPostRepository(db, testLogger(t)), NewAuthorRepository(db, testLogger(t))
}

func createTestPost(t *testing.T, repo *PostRepository, title string, authorID uint) *domain.Post {
	t.Helper()

	post, err := domain.NewPost(title, "Content of "+title, authorID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_Create(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")

	post, err := domain.NewPost("Hello World", "First post", author.ID)
	require.NoError(t, err)

	err = repo.Create(ctx, post)

	require.NoError(t, err)
	assert.NotZero(t, post.ID)
}

func TestPostRepository_Create_MissingAuthor(t *testing.T) {
	repo, _ := newTestPostRepository(t)

	post, err := domain.NewPost("Hello World", "First post", 999)
	require.NoError(t, err)

	err = repo.Create(context.Background(), post)

	assert.ErrorIs(t, err, domain.ErrInvalidAuthorReference)
}

func TestPostRepository_GetByID(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	created := createTestPost(t, repo, "Hello World", author.ID)

	found, err := repo.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Hello World", found.Title)
	assert.Equal(t, author.ID, found.AuthorID)

	// Author comes back eagerly loaded
	require.NotNil(t, found.Author)
	assert.Equal(t, "Jane Doe", found.Author.Name)
	assert.Equal(t, "jane@example.com", found.Author.Email)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestPostRepository(t)

	found, err := repo.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrPostNotFound)
	assert.Nil(t, found)
}

func TestPostRepository_Update(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	post := createTestPost(t, repo, "Hello World", author.ID)

	require.NoError(t, post.UpdateTitle("Updated Title"))
	err := repo.Update(ctx, post)

	require.NoError(t, err)

	found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", found.Title)
	assert.Equal(t, "Content of Hello World", found.Content)
}

func TestPostRepository_Update_Reassign(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	other := createTestAuthor(t, authorRepo, "John Doe", "john@example.com")
	post := createTestPost(t, repo, "Hello World", author.ID)

	require.NoError(t, post.Reassign(other.ID))
	err := repo.Update(ctx, post)

	require.NoError(t, err)

	found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.AuthorID)
	require.NotNil(t, found.Author)
	assert.Equal(t, "John Doe", found.Author.Name)
}

func TestPostRepository_Update_MissingAuthor(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	post := createTestPost(t, repo, "Hello World", author.ID)

	require.NoError(t, post.Reassign(999))
	err := repo.Update(ctx, post)

	assert.ErrorIs(t, err, domain.ErrInvalidAuthorReference)
}

func TestPostRepository_Update_NotFound(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")

	ghost := &domain.Post{ID: 999, Title: "Ghost", Content: "Gone", AuthorID: author.ID}
	err := repo.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepository_Delete(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	author := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	post := createTestPost(t, repo, "Hello World", author.ID)

	err := repo.Delete(ctx, post.ID)

	require.NoError(t, err)

	_, err = repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)

	// Deleting a post leaves its author in place
	_, err = authorRepo.GetByID(ctx, author.ID)
	assert.NoError(t, err)
}

func TestPostRepository_Delete_NotFound(t *testing.T) {
	repo, _ := newTestPostRepository(t)

	err := repo.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepository_List(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	posts, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, posts)

	jane := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	john := createTestAuthor(t, authorRepo, "John Doe", "john@example.com")
	createTestPost(t, repo, "First", jane.ID)
	createTestPost(t, repo, "Second", john.ID)
	createTestPost(t, repo, "Third", jane.ID)

	posts, err = repo.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, "Second", posts[1].Title)
	assert.Equal(t, "Third", posts[2].Title)

	// Each post carries its author without extra queries
	for _, post := range posts {
		require.NotNil(t, post.Author)
		assert.Equal(t, post.AuthorID, post.Author.ID)
	}
}

func TestPostRepository_List_FilterByAuthor(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	jane := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	john := createTestAuthor(t, authorRepo, "John Doe", "john@example.com")
	createTestPost(t, repo, "First", jane.ID)
	createTestPost(t, repo, "Second", john.ID)
	createTestPost(t, repo, "Third", jane.ID)

	posts, err := repo.List(ctx, &jane.ID)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, "Third", posts[1].Title)
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	repo, authorRepo := newTestPostRepository(t)
	ctx := context.Background()

	jane := createTestAuthor(t, authorRepo, "Jane Doe", "jane@example.com")
	john := createTestAuthor(t, authorRepo, "John Doe", "john@example.com")
	createTestPost(t, repo, "First", jane.ID)
	createTestPost(t, repo, "Second", john.ID)

	posts, err := repo.ListByAuthor(ctx, jane.ID)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "First", posts[0].Title)
	// The plain author listing skips the association
	assert.Nil(t, posts[0].Author)

	// Unknown author simply yields no posts at this layer
	posts, err = repo.ListByAuthor(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
