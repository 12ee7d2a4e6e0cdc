package domain

import (
	"strings"
	"time"
)

// MaxPostTitleLength is the maximum length of a post title
const MaxPostTitleLength = 200

// Post represents a blog post belonging to exactly one author
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *Author   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a new post with validation
func NewPost(title, content string, authorID uint) (*Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("title", title, "title cannot be empty or whitespace only")
	}

	if len(title) > MaxPostTitleLength {
		return nil, NewValidationError("title", title, "title must be 200 characters or less")
	}

	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", content, "content cannot be empty or whitespace only")
	}

	if authorID == 0 {
		return nil, NewValidationError("author_id", authorID, "author_id is required")
	}

	now := time.Now()

	post := &Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return post, nil
}

// UpdateTitle updates the post title
func (p *Post) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return NewValidationError("title", title, "title cannot be empty or whitespace only")
	}

	if len(title) > MaxPostTitleLength {
		return NewValidationError("title", title, "title must be 200 characters or less")
	}

	p.Title = title
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateContent updates the post content
func (p *Post) UpdateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", content, "content cannot be empty or whitespace only")
	}

	p.Content = content
	p.UpdatedAt = time.Now()
	return nil
}

// Reassign moves the post to a different author
func (p *Post) Reassign(authorID uint) error {
	if authorID == 0 {
		return NewValidationError("author_id", authorID, "author_id is required")
	}

	p.AuthorID = authorID
	p.Author = nil
	p.UpdatedAt = time.Now()
	return nil
}

// PostUpdates represents a partial update to a post. Nil fields are
// left unchanged.
type PostUpdates struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	AuthorID *uint   `json:"author_id,omitempty"`
}

// IsEmpty returns true if no fields are set
func (u PostUpdates) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.AuthorID == nil
}

// ApplyUpdates applies the set fields of updates to the post
func (p *Post) ApplyUpdates(updates PostUpdates) error {
	if updates.Title != nil {
		if err := p.UpdateTitle(*updates.Title); err != nil {
			return err
		}
	}

	if updates.Content != nil {
		if err := p.UpdateContent(*updates.Content); err != nil {
			return err
		}
	}

	if updates.AuthorID != nil {
		if err := p.Reassign(*updates.AuthorID); err != nil {
			return err
		}
	}

	return nil
}
