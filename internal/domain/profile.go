package domain

import (
	"time"

	"github.com/google/uuid"
)

// SocialLinks holds the optional social-network URLs of a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Experience is one entry in a profile's work history.
// Current entries never carry an end date.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is one entry in a profile's education history.
// Current entries never carry an end date.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Profile is a user's public developer profile. Each profile belongs to
// exactly one user and is addressable by its globally unique handle.
type Profile struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"user_id"`
	Handle         string       `json:"handle"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"github_username,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         SocialLinks  `json:"social"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewProfile creates a new Profile owned by the given user.
func NewProfile(userID uuid.UUID, handle, status string) (*Profile, error) {
	now := time.Now().UTC()
	profile := &Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Handle:     handle,
		Status:     status,
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.Handle == "" {
		return ErrEmptyHandle
	}
	if p.Status == "" {
		return ErrEmptyStatus
	}
	return nil
}

// NewExperience creates a work-history entry with a fresh ID.
// A current entry drops any provided end date so that current=true always
// implies to=null.
func NewExperience(
	title, company, location string,
	from time.Time,
	to *time.Time,
	current bool,
	description string,
) Experience {
	if current {
		to = nil
	}
	return Experience{
		ID:          uuid.New(),
		Title:       title,
		Company:     company,
		Location:    location,
		From:        from,
		To:          to,
		Current:     current,
		Description: description,
	}
}

// NewEducation creates an education entry with a fresh ID.
// A current entry drops any provided end date so that current=true always
// implies to=null.
func NewEducation(
	school, degree, fieldOfStudy string,
	from time.Time,
	to *time.Time,
	current bool,
	description string,
) Education {
	if current {
		to = nil
	}
	return Education{
		ID:           uuid.New(),
		School:       school,
		Degree:       degree,
		FieldOfStudy: fieldOfStudy,
		From:         from,
		To:           to,
		Current:      current,
		Description:  description,
	}
}

// AddExperience appends an entry to the experience sequence.
func (p *Profile) AddExperience(exp Experience) {
	p.Experience = append(p.Experience, exp)
	p.UpdatedAt = time.Now().UTC()
}

// RemoveExperience removes the entry with the given ID from the experience
// sequence. Returns ErrExperienceNotFound if no entry matches; the sequence
// is left unchanged in that case.
func (p *Profile) RemoveExperience(id uuid.UUID) error {
	for i, exp := range p.Experience {
		if exp.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrExperienceNotFound
}

// AddEducation appends an entry to the education sequence.
func (p *Profile) AddEducation(edu Education) {
	p.Education = append(p.Education, edu)
	p.UpdatedAt = time.Now().UTC()
}

// RemoveEducation removes the entry with the given ID from the education
// sequence. Returns ErrEducationNotFound if no entry matches; the sequence
// is left unchanged in that case.
func (p *Profile) RemoveEducation(id uuid.UUID) error {
	for i, edu := range p.Education {
		if edu.ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrEducationNotFound
}
