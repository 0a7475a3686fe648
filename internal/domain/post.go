package domain

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a single user likes a post. The likes sequence of a post
// behaves as a set: at most one entry per distinct user.
type Like struct {
	UserID uuid.UUID `json:"user"`
}

// Comment is one entry in a post's comment sequence. New comments are
// prepended, so the sequence reads newest first.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Name      string    `json:"name,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a user-authored post with likes and comments embedded as ordered
// sub-documents. Name denormalizes the author's display name at creation
// time.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Name      string    `json:"name,omitempty"`
	Text      string    `json:"text"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPost creates a post authored by the given user.
func NewPost(userID uuid.UUID, name, text string) (*Post, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	return &Post{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Text:      text,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// LikedBy reports whether the given user currently likes the post.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds a like for the given user if absent, or removes it if
// present. Returns true when the post is liked after the call. A user never
// holds more than one like on the same post.
func (p *Post) ToggleLike(userID uuid.UUID) bool {
	for i, like := range p.Likes {
		if like.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append(p.Likes, Like{UserID: userID})
	return true
}

// NewComment creates a comment authored by the given user.
func NewComment(userID uuid.UUID, name, text string) (Comment, error) {
	if text == "" {
		return Comment{}, ErrEmptyText
	}

	return Comment{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AddComment prepends a comment to the comment sequence.
func (p *Post) AddComment(comment Comment) {
	p.Comments = append([]Comment{comment}, p.Comments...)
}

// RemoveComment removes the comment with the given ID. Returns
// ErrCommentNotFound if no comment matches; the sequence is left unchanged
// in that case.
func (p *Post) RemoveComment(id uuid.UUID) error {
	for i, comment := range p.Comments {
		if comment.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}
