package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/app/domain"
)

func TestPost_NewPost(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		authorID uint
		wantErr  bool
	}{
		{
			name:     "valid post creation",
			title:    "Hello World",
			content:  "First post content",
			authorID: 1,
			wantErr:  false,
		},
		{
			name:     "empty title",
			title:    "",
			content:  "First post content",
			authorID: 1,
			wantErr:  true,
		},
		{
			name:     "whitespace only title",
			title:    "   ",
			content:  "First post content",
			authorID: 1,
			wantErr:  true,
		},
		{
			name:     "title too long",
			title:    strings.Repeat("a", 201),
			content:  "First post content",
			authorID: 1,
			wantErr:  true,
		},
		{
			name:     "empty content",
			title:    "Hello World",
			content:  "",
			authorID: 1,
			wantErr:  true,
		},
		{
			name:     "whitespace only content",
			title:    "Hello World",
			content:  "   ",
			authorID: 1,
			wantErr:  true,
		},
		{
			name:     "zero author id",
			title:    "Hello World",
			content:  "First post content",
			authorID: 0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := domain.NewPost(tt.title, tt.content, tt.authorID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, post)

				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, post)
				assert.Equal(t, tt.title, post.Title)
				assert.Equal(t, tt.content, post.Content)
				assert.Equal(t, tt.authorID, post.AuthorID)
				assert.Zero(t, post.ID)
				assert.False(t, post.CreatedAt.IsZero())
				assert.False(t, post.UpdatedAt.IsZero())
			}
		})
	}
}

func TestPost_UpdateTitle(t *testing.T) {
	post, err := domain.NewPost("Hello World", "Content", 1)
	require.NoError(t, err)

	err = post.UpdateTitle("Updated Title")

	require.NoError(t, err)
	assert.Equal(t, "Updated Title", post.Title)

	// Invalid title leaves the post unchanged
	err = post.UpdateTitle("")
	assert.Error(t, err)
	assert.Equal(t, "Updated Title", post.Title)
}

func TestPost_UpdateContent(t *testing.T) {
	post, err := domain.NewPost("Hello World", "Content", 1)
	require.NoError(t, err)

	err = post.UpdateContent("Updated content")

	require.NoError(t, err)
	assert.Equal(t, "Updated content", post.Content)

	err = post.UpdateContent("   ")
	assert.Error(t, err)
	assert.Equal(t, "Updated content", post.Content)
}

func TestPost_Reassign(t *testing.T) {
	post, err := domain.NewPost("Hello World", "Content", 1)
	require.NoError(t, err)
	post.Author = &domain.Author{ID: 1, Name: "Jane", Email: "jane@example.com"}

	err = post.Reassign(2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), post.AuthorID)
	// Stale embedded author is cleared on reassignment
	assert.Nil(t, post.Author)

	err = post.Reassign(0)
	assert.Error(t, err)
	assert.Equal(t, uint(2), post.AuthorID)
}

func TestPost_ApplyUpdates(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }

	tests := []struct {
		name         string
		updates      domain.PostUpdates
		wantErr      bool
		wantTitle    string
		wantContent  string
		wantAuthorID uint
	}{
		{
			name:         "update title only",
			updates:      domain.PostUpdates{Title: strPtr("New Title")},
			wantTitle:    "New Title",
			wantContent:  "Content",
			wantAuthorID: 1,
		},
		{
			name:         "update content only",
			updates:      domain.PostUpdates{Content: strPtr("New content")},
			wantTitle:    "Hello World",
			wantContent:  "New content",
			wantAuthorID: 1,
		},
		{
			name:         "reassign author",
			updates:      domain.PostUpdates{AuthorID: uintPtr(2)},
			wantTitle:    "Hello World",
			wantContent:  "Content",
			wantAuthorID: 2,
		},
		{
			name: "update all fields",
			updates: domain.PostUpdates{
				Title:    strPtr("New Title"),
				Content:  strPtr("New content"),
				AuthorID: uintPtr(3),
			},
			wantTitle:    "New Title",
			wantContent:  "New content",
			wantAuthorID: 3,
		},
		{
			name:         "empty updates change nothing",
			updates:      domain.PostUpdates{},
			wantTitle:    "Hello World",
			wantContent:  "Content",
			wantAuthorID: 1,
		},
		{
			name:    "invalid title rejected",
			updates: domain.PostUpdates{Title: strPtr("   ")},
			wantErr: true,
		},
		{
			name:    "zero author id rejected",
			updates: domain.PostUpdates{AuthorID: uintPtr(0)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := domain.NewPost("Hello World", "Content", 1)
			require.NoError(t, err)

			err = post.ApplyUpdates(tt.updates)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTitle, post.Title)
				assert.Equal(t, tt.wantContent, post.Content)
				assert.Equal(t, tt.wantAuthorID, post.AuthorID)
			}
		})
	}
}

func TestPostUpdates_IsEmpty(t *testing.T) {
	title := "Title"

	assert.True(t, domain.PostUpdates{}.IsEmpty())
	assert.False(t, domain.PostUpdates{Title: &title}.IsEmpty())
}
