package domain

import "errors"

// Common domain errors returned by entity constructors and mutators.
var (
	// ErrEmptyName indicates a user was created without a name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyEmail indicates a user was created without an email.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyHandle indicates a profile was created without a handle.
	ErrEmptyHandle = errors.New("handle cannot be empty")

	// ErrEmptyStatus indicates a profile was created without a status.
	ErrEmptyStatus = errors.New("status cannot be empty")

	// ErrEmptyText indicates a post or comment was created without text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrExperienceNotFound indicates the referenced experience entry is not
	// part of the profile's experience sequence.
	ErrExperienceNotFound = errors.New("experience entry not found")

	// ErrEducationNotFound indicates the referenced education entry is not
	// part of the profile's education sequence.
	ErrEducationNotFound = errors.New("education entry not found")

	// ErrCommentNotFound indicates the referenced comment is not part of the
	// post's comment sequence.
	ErrCommentNotFound = errors.New("comment not found")
)
