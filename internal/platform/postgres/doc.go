// Package postgres provides PostgreSQL implementations of the store
// interfaces. Ordered sub-documents (experience, education, likes, comments)
// are persisted as JSONB columns; uniqueness of emails and handles is
// enforced by unique indexes and surfaced as the store's duplicate errors.
package postgres
