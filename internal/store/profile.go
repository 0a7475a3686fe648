package store

import (
	"context"

	"github.com/devconnect/api/internal/domain"
	"github.com/google/uuid"
)

// ProfileStore defines the interface for profile data persistence.
type ProfileStore interface {
	// GetByUserID retrieves the profile owned by the given user.
	// Returns ErrProfileNotFound if the user has no profile.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	// GetByHandle retrieves a profile by its unique handle.
	// Returns ErrProfileNotFound if no profile carries the handle.
	GetByHandle(ctx context.Context, handle string) (*domain.Profile, error)

	// GetAll retrieves every profile, newest first.
	GetAll(ctx context.Context) ([]*domain.Profile, error)

	// Upsert creates the profile if the owner has none, otherwise updates
	// the profile's scalar fields, skills, and social links. Experience and
	// education sequences are left untouched on update.
	// Returns ErrHandleExists if another owner's profile already uses the
	// handle; the owner's own existing record never conflicts with itself.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// Update persists the full profile document, including the experience
	// and education sequences. Used after in-memory entry mutations.
	// Returns ErrProfileNotFound if the profile does not exist.
	Update(ctx context.Context, profile *domain.Profile) error

	// Delete removes the profile owned by the given user. Deleting an
	// absent profile is not an error; the operation is idempotent.
	Delete(ctx context.Context, userID uuid.UUID) error
}
