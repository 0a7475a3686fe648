package store

import (
	"context"

	"github.com/devconnect/api/internal/domain"
	"github.com/google/uuid"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// GetAll retrieves every post ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]*domain.Post, error)

	// Update persists the post's likes and comments sequences after an
	// in-memory mutation (like toggle, comment add/remove).
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
