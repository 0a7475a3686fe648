package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("Jane Doe", "jane@example.com", "hashed-password")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "hashed-password", user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser("", "jane@example.com", "hashed-password")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser("Jane Doe", "", "hashed-password")
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})
}

func TestUserPasswordHashNeverSerialized(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Jane Doe", "jane@example.com", "hashed-password")
	require.NoError(t, err)

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hashed-password")
	assert.NotContains(t, string(data), "password")
}
