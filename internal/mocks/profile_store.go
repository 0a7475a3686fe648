package mocks

import (
	"context"
	"time"

	"github.com/devconnect/api/internal/domain"
	"github.com/devconnect/api/internal/store"
	"github.com/google/uuid"
)

// MockProfileStore implements store.ProfileStore for testing
type MockProfileStore struct {
	// Function fields for customizable behavior
	GetByUserIDFn func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	GetByHandleFn func(ctx context.Context, handle string) (*domain.Profile, error)
	GetAllFn      func(ctx context.Context) ([]*domain.Profile, error)
	UpsertFn      func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	UpdateFn      func(ctx context.Context, profile *domain.Profile) error
	DeleteFn      func(ctx context.Context, userID uuid.UUID) error

	// Data for default implementation, keyed by owner user ID
	Profiles map[uuid.UUID]*domain.Profile
}

// NewMockProfileStore creates a new mock store with initialized defaults
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

// GetByUserID implements the ProfileStore interface
func (m *MockProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}

	profile, exists := m.Profiles[userID]
	if !exists {
		return nil, store.ErrProfileNotFound
	}

	return profile, nil
}

// GetByHandle implements the ProfileStore interface
func (m *MockProfileStore) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	if m.GetByHandleFn != nil {
		return m.GetByHandleFn(ctx, handle)
	}

	for _, profile := range m.Profiles {
		if profile.Handle == handle {
			return profile, nil
		}
	}

	return nil, store.ErrProfileNotFound
}

// GetAll implements the ProfileStore interface
func (m *MockProfileStore) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	profiles := []*domain.Profile{}
	for _, profile := range m.Profiles {
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Upsert implements the ProfileStore interface. The default implementation
// mirrors the real store's merge rules: scalar fields, skills, and social
// links are replaced while experience and education survive updates.
func (m *MockProfileStore) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, profile)
	}

	for ownerID, existing := range m.Profiles {
		if existing.Handle == profile.Handle && ownerID != profile.UserID {
			return nil, store.ErrHandleExists
		}
	}

	existing, exists := m.Profiles[profile.UserID]
	if !exists {
		m.Profiles[profile.UserID] = profile
		return profile, nil
	}

	existing.Handle = profile.Handle
	existing.Company = profile.Company
	existing.Website = profile.Website
	existing.Location = profile.Location
	existing.Status = profile.Status
	existing.Skills = profile.Skills
	existing.Bio = profile.Bio
	existing.GithubUsername = profile.GithubUsername
	existing.Social = profile.Social
	existing.UpdatedAt = time.Now().UTC()

	return existing, nil
}

// Update implements the ProfileStore interface
func (m *MockProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, profile)
	}

	if _, exists := m.Profiles[profile.UserID]; !exists {
		return store.ErrProfileNotFound
	}

	m.Profiles[profile.UserID] = profile
	return nil
}

// Delete implements the ProfileStore interface
func (m *MockProfileStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}

	delete(m.Profiles, userID)
	return nil
}
