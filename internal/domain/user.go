package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the application.
// The password hash is never serialized; handlers shape their own responses
// from the public fields.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given name, email, and password hash.
// It generates a new UUID for the user ID and sets the creation timestamp.
// Length and format rules for name, email, and the plaintext password are the
// request validator's responsibility; the domain only rejects structurally
// empty users.
func NewUser(name, email, hashedPassword string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	return nil
}
