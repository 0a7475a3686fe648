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

const postColumns = `id, user_id, name, text, likes, comments, created_at`

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresPostStore(db store.DBTX, log *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: log.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		post     domain.Post
		likes    []byte
		comments []byte
	)

	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Name,
		&post.Text,
		&likes,
		&comments,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(likes, &post.Likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}
	if err := json.Unmarshal(comments, &post.Comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	return &post, nil
}

func encodePostDocs(post *domain.Post) (likes, comments []byte, err error) {
	if post.Likes == nil {
		post.Likes = []domain.Like{}
	}
	if post.Comments == nil {
		post.Comments = []domain.Comment{}
	}

	if likes, err = json.Marshal(post.Likes); err != nil {
		return nil, nil, fmt.Errorf("failed to encode likes: %w", err)
	}
	if comments, err = json.Marshal(post.Comments); err != nil {
		return nil, nil, fmt.Errorf("failed to encode comments: %w", err)
	}
	return likes, comments, nil
}

// Create implements store.PostStore.Create
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	likes, comments, err := encodePostDocs(post)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (id, user_id, name, text, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.UserID,
		post.Name,
		post.Text,
		likes,
		comments,
		post.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("post references missing user",
				slog.String("user_id", post.UserID.String()))
			return store.ErrUserNotFound
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", post.UserID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	return post, nil
}

// GetAll implements store.PostStore.GetAll
// Posts come back ordered by creation time, newest first. Returns an empty
// slice when no posts exist.
func (s *PostgresPostStore) GetAll(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	posts := []*domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// Update implements store.PostStore.Update
// Only the likes and comments sequences change after creation; text and
// author are immutable.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	likes, comments, err := encodePostDocs(post)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET likes = $1, comments = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, likes, comments, post.ID)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("post not found for update",
			slog.String("post_id", post.ID.String()))
		return store.ErrPostNotFound
	}

	return nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM posts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("post not found for delete", slog.String("post_id", id.String()))
		return store.ErrPostNotFound
	}

	log.Info("post deleted", slog.String("post_id", id.String()))
	return nil
}
