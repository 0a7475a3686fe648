package api

import (
	"time"

	"github.com/google/uuid"
)

// Request and response structures. The validate tags are the declarative
// rule set evaluated by ValidateRequest before any handler touches
// persistence.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public shape of a user. The password hash is never
// part of any response.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TokenResponse carries an issued bearer token, already prefixed with its
// scheme tag.
type TokenResponse struct {
	Token string `json:"token"`
}

// SocialRequest carries the optional social-network URLs of a profile
// payload. Violations on these fields are reported under the leaf field
// name (youtube, twitter, ...), not under social.
type SocialRequest struct {
	Youtube   string `json:"youtube"   validate:"omitempty,url"`
	Twitter   string `json:"twitter"   validate:"omitempty,url"`
	Linkedin  string `json:"linkedin"  validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Facebook  string `json:"facebook"  validate:"omitempty,url"`
}

// ProfileRequest defines the payload for creating or updating a profile.
// Skills arrive as a single delimited string and are split into an ordered
// sequence by the handler.
type ProfileRequest struct {
	Handle         string        `json:"handle"          validate:"required"`
	Company        string        `json:"company"`
	Website        string        `json:"website"         validate:"omitempty,url"`
	Location       string        `json:"location"`
	Status         string        `json:"status"          validate:"required"`
	Skills         string        `json:"skills"`
	Bio            string        `json:"bio"`
	GithubUsername string        `json:"github_username"`
	Social         SocialRequest `json:"social"`
}

// ExperienceRequest defines the payload for adding a work-history entry.
type ExperienceRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Company     string     `json:"company"     validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"        validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// EducationRequest defines the payload for adding an education entry.
type EducationRequest struct {
	School       string     `json:"school"         validate:"required"`
	Degree       string     `json:"degree"         validate:"required"`
	FieldOfStudy string     `json:"field_of_study" validate:"required"`
	From         time.Time  `json:"from"           validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// PostRequest defines the payload for creating a post or a comment.
// The author name is denormalized from the authenticated user, so a name in
// the payload is accepted but ignored.
type PostRequest struct {
	Text string `json:"text" validate:"required"`
	Name string `json:"name"`
}

// DeletedResponse acknowledges a successful delete.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}
