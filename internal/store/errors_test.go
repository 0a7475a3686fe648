package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHierarchy(t *testing.T) {
	t.Parallel()

	// Entity-specific errors stay matchable against their generic parent
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrProfileNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrPostNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.ErrorIs(t, ErrHandleExists, ErrDuplicate)

	assert.NotErrorIs(t, ErrEmailExists, ErrNotFound)
	assert.NotErrorIs(t, ErrUserNotFound, ErrDuplicate)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrPostNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("fetching: %w", ErrProfileNotFound)))
	assert.False(t, IsNotFoundError(ErrHandleExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("saving: %w", ErrHandleExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
}
