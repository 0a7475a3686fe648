package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devconnect/api/internal/domain"
	"github.com/devconnect/api/internal/platform/logger"
	"github.com/devconnect/api/internal/store"
	"github.com/google/uuid"
)

const profileColumns = `
	id, user_id, handle, company, website, location, status, skills,
	bio, github_username, experience, education, social, created_at, updated_at
`

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresProfileStore(db store.DBTX, log *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: log.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		profile    domain.Profile
		skills     []byte
		experience []byte
		education  []byte
		social     []byte
	)

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Handle,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Status,
		&skills,
		&profile.Bio,
		&profile.GithubUsername,
		&experience,
		&education,
		&social,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode experience: %w", err)
	}
	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return nil, fmt.Errorf("failed to decode education: %w", err)
	}
	if err := json.Unmarshal(social, &profile.Social); err != nil {
		return nil, fmt.Errorf("failed to decode social links: %w", err)
	}

	return &profile, nil
}

// encodeProfileDocs marshals the profile's JSONB columns.
func encodeProfileDocs(profile *domain.Profile) (skills, experience, education, social []byte, err error) {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Experience == nil {
		profile.Experience = []domain.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []domain.Education{}
	}

	if skills, err = json.Marshal(profile.Skills); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode skills: %w", err)
	}
	if experience, err = json.Marshal(profile.Experience); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode experience: %w", err)
	}
	if education, err = json.Marshal(profile.Education); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode education: %w", err)
	}
	if social, err = json.Marshal(profile.Social); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode social links: %w", err)
	}
	return skills, experience, education, social, nil
}

// GetByUserID implements store.ProfileStore.GetByUserID
// Returns store.ErrProfileNotFound if the user has no profile.
func (s *PostgresProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found for user",
				slog.String("user_id", userID.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by user ID",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	return profile, nil
}

// GetByHandle implements store.ProfileStore.GetByHandle
// Returns store.ErrProfileNotFound if no profile carries the handle.
func (s *PostgresProfileStore) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE handle = $1`

	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, handle))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found by handle",
				slog.String("handle", handle))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by handle",
			slog.String("error", err.Error()),
			slog.String("handle", handle))
		return nil, err
	}

	return profile, nil
}

// GetAll implements store.ProfileStore.GetAll
// Returns an empty slice when no profiles exist.
func (s *PostgresProfileStore) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query profiles", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	profiles := []*domain.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			log.Error("failed to scan profile row", slog.String("error", err.Error()))
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return profiles, nil
}

// Upsert implements store.ProfileStore.Upsert
// A single statement inserts the profile or, when the owner already has one,
// updates its scalar fields, skills, and social links while leaving the
// experience and education sequences untouched. The handle unique index
// rejects handles held by other owners; that violation is surfaced as
// store.ErrHandleExists.
func (s *PostgresProfileStore) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return nil, err
	}

	skills, experience, education, social, err := encodeProfileDocs(profile)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO profiles (
			id, user_id, handle, company, website, location, status, skills,
			bio, github_username, experience, education, social, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id) DO UPDATE SET
			handle = EXCLUDED.handle,
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			social = EXCLUDED.social,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns

	updated, err := scanProfile(s.db.QueryRowContext(
		ctx,
		query,
		profile.ID,
		profile.UserID,
		profile.Handle,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Status,
		skills,
		profile.Bio,
		profile.GithubUsername,
		experience,
		education,
		social,
		profile.CreatedAt,
		profile.UpdatedAt,
	))

	if err != nil {
		if isUniqueViolation(err, "profiles_handle_key") {
			log.Debug("duplicate handle during profile upsert",
				slog.String("user_id", profile.UserID.String()),
				slog.String("handle", profile.Handle))
			return nil, store.ErrHandleExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("profile references missing user",
				slog.String("user_id", profile.UserID.String()))
			return nil, store.ErrUserNotFound
		}

		log.Error("failed to upsert profile",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return nil, err
	}

	log.Info("profile upserted successfully",
		slog.String("profile_id", updated.ID.String()),
		slog.String("user_id", updated.UserID.String()))
	return updated, nil
}

// Update implements store.ProfileStore.Update
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *PostgresProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	skills, experience, education, social, err := encodeProfileDocs(profile)
	if err != nil {
		return err
	}

	query := `
		UPDATE profiles
		SET handle = $1, company = $2, website = $3, location = $4, status = $5,
			skills = $6, bio = $7, github_username = $8, experience = $9,
			education = $10, social = $11, updated_at = $12
		WHERE id = $13
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		profile.Handle,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Status,
		skills,
		profile.Bio,
		profile.GithubUsername,
		experience,
		education,
		social,
		profile.UpdatedAt,
		profile.ID,
	)

	if err != nil {
		if isUniqueViolation(err, "profiles_handle_key") {
			return store.ErrHandleExists
		}
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("profile not found for update",
			slog.String("profile_id", profile.ID.String()))
		return store.ErrProfileNotFound
	}

	return nil
}

// Delete implements store.ProfileStore.Delete
// Deleting an absent profile succeeds; the original contract for profile
// deletion has no failure case.
func (s *PostgresProfileStore) Delete(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM profiles WHERE user_id = $1`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		log.Error("failed to delete profile",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("profile deleted",
		slog.String("user_id", userID.String()))
	return nil
}
