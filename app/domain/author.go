package domain

import (
	"regexp"
	"strings"
	"time"
)

// MaxAuthorNameLength is the maximum length of an author name
const MaxAuthorNameLength = 100

// Author represents a blog author who owns zero or more posts
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Posts     []Post    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// emailRegex validates email addresses (pragmatic format check, not RFC 5322)
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewAuthor creates a new author with validation
func NewAuthor(name, email string) (*Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", name, "name cannot be empty or whitespace only")
	}

	if len(name) > MaxAuthorNameLength {
		return nil, NewValidationError("name", name, "name must be 100 characters or less")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewValidationError("email", email, "email is required")
	}

	if !emailRegex.MatchString(email) {
		return nil, NewValidationError("email", email, "email must be a valid email address")
	}

	now := time.Now()

	author := &Author{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return author, nil
}

// UpdateName updates the author name
func (a *Author) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError("name", name, "name cannot be empty or whitespace only")
	}

	if len(name) > MaxAuthorNameLength {
		return NewValidationError("name", name, "name must be 100 characters or less")
	}

	a.Name = name
	a.UpdatedAt = time.Now()
	return nil
}

// UpdateEmail updates the author email
func (a *Author) UpdateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewValidationError("email", email, "email is required")
	}

	if !emailRegex.MatchString(email) {
		return NewValidationError("email", email, "email must be a valid email address")
	}

	a.Email = email
	a.UpdatedAt = time.Now()
	return nil
}

// AuthorUpdates represents a partial update to an author. Nil fields
// are left unchanged.
type AuthorUpdates struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// IsEmpty returns true if no fields are set
func (u AuthorUpdates) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}

// ApplyUpdates applies the set fields of updates to the author
func (a *Author) ApplyUpdates(updates AuthorUpdates) error {
	if updates.Name != nil {
		if err := a.UpdateName(*updates.Name); err != nil {
			return err
		}
	}

	if updates.Email != nil {
		if err := a.UpdateEmail(*updates.Email); err != nil {
			return err
		}
	}

	return nil
}
