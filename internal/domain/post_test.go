package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid post", func(t *testing.T) {
		t.Parallel()

		post, err := NewPost(userID, "Jane Doe", "Hello world")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, post.ID)
		assert.Equal(t, userID, post.UserID)
		assert.Equal(t, "Jane Doe", post.Name)
		assert.Equal(t, "Hello world", post.Text)
		assert.Empty(t, post.Likes)
		assert.Empty(t, post.Comments)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("empty text rejected", func(t *testing.T) {
		t.Parallel()

		post, err := NewPost(userID, "Jane Doe", "")
		assert.ErrorIs(t, err, ErrEmptyText)
		assert.Nil(t, post)
	})
}

func TestToggleLike(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	otherID := uuid.New()

	post, err := NewPost(uuid.New(), "Author", "A post")
	require.NoError(t, err)

	// First toggle likes the post
	liked := post.ToggleLike(userID)
	assert.True(t, liked)
	assert.True(t, post.LikedBy(userID))
	assert.Len(t, post.Likes, 1)

	// Toggling again for the same user never stacks a second like
	liked = post.ToggleLike(userID)
	assert.False(t, liked)
	assert.False(t, post.LikedBy(userID))
	assert.Empty(t, post.Likes)

	// Likes from distinct users are independent
	post.ToggleLike(userID)
	post.ToggleLike(otherID)
	assert.Len(t, post.Likes, 2)
	assert.True(t, post.LikedBy(userID))
	assert.True(t, post.LikedBy(otherID))

	post.ToggleLike(userID)
	assert.Len(t, post.Likes, 1)
	assert.False(t, post.LikedBy(userID))
	assert.True(t, post.LikedBy(otherID))
}

func TestToggleLikeRoundTrip(t *testing.T) {
	t.Parallel()

	post, err := NewPost(uuid.New(), "Author", "A post")
	require.NoError(t, err)

	userID := uuid.New()

	// An even number of toggles always returns the post to its prior state
	for i := 0; i < 3; i++ {
		assert.True(t, post.ToggleLike(userID))
		assert.False(t, post.ToggleLike(userID))
	}
	assert.Empty(t, post.Likes)
}

func TestAddComment(t *testing.T) {
	t.Parallel()

	post, err := NewPost(uuid.New(), "Author", "A post")
	require.NoError(t, err)

	first, err := NewComment(uuid.New(), "Alice", "first comment")
	require.NoError(t, err)
	second, err := NewComment(uuid.New(), "Bob", "second comment")
	require.NoError(t, err)

	post.AddComment(first)
	post.AddComment(second)

	// Newest comment leads the sequence
	require.Len(t, post.Comments, 2)
	assert.Equal(t, second.ID, post.Comments[0].ID)
	assert.Equal(t, first.ID, post.Comments[1].ID)
}

func TestNewCommentEmptyText(t *testing.T) {
	t.Parallel()

	_, err := NewComment(uuid.New(), "Alice", "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestRemoveComment(t *testing.T) {
	t.Parallel()

	post, err := NewPost(uuid.New(), "Author", "A post")
	require.NoError(t, err)

	first, err := NewComment(uuid.New(), "Alice", "first")
	require.NoError(t, err)
	second, err := NewComment(uuid.New(), "Bob", "second")
	require.NoError(t, err)

	post.AddComment(first)
	post.AddComment(second)

	t.Run("removes matching comment", func(t *testing.T) {
		err := post.RemoveComment(first.ID)
		require.NoError(t, err)
		require.Len(t, post.Comments, 1)
		assert.Equal(t, second.ID, post.Comments[0].ID)
	})

	t.Run("unknown id leaves sequence unchanged", func(t *testing.T) {
		before := len(post.Comments)
		err := post.RemoveComment(uuid.New())
		assert.ErrorIs(t, err, ErrCommentNotFound)
		assert.Len(t, post.Comments, before)
	})
}
