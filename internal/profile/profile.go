package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the resume data every letter is built from.
type CandidateProfile struct {
	Name       string   `mapstructure:"name" json:"name" validate:"required"`
	Email      string   `mapstructure:"email" json:"email,omitempty" validate:"omitempty,email"`
	Phone      string   `mapstructure:"phone" json:"phone,omitempty"`
	Website    string   `mapstructure:"website" json:"website,omitempty" validate:"omitempty,url"`
	Education  []string `mapstructure:"education" json:"education,omitempty"`
	Experience []string `mapstructure:"experience" json:"experience,omitempty"`
	Skills     []string `mapstructure:"skills" json:"skills,omitempty"`
	Projects   []string `mapstructure:"projects" json:"projects,omitempty"`
}

// Store holds a read-only candidate profile.
type Store struct {
	profile CandidateProfile
}

// NewStore validates the profile and keeps a private copy of it.
func NewStore(p CandidateProfile) (*Store, error) {
	p = normalize(p)

	if err := validator.New().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid candidate profile: field %s failed on %q", strings.ToLower(verrs[0].Field()), verrs[0].Tag())
		}
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}

	return &Store{profile: p.clone()}, nil
}

// Profile returns a copy of the stored profile.
func (s *Store) Profile() CandidateProfile {
	if s == nil {
		return CandidateProfile{}
	}
	return s.profile.clone()
}

func (p CandidateProfile) clone() CandidateProfile {
	p.Education = cloneStrings(p.Education)
	p.Experience = cloneStrings(p.Experience)
	p.Skills = cloneStrings(p.Skills)
	p.Projects = cloneStrings(p.Projects)
	return p
}

func normalize(p CandidateProfile) CandidateProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Website = strings.TrimSpace(p.Website)
	p.Education = compact(p.Education)
	p.Experience = compact(p.Experience)
	p.Skills = compact(p.Skills)
	p.Projects = compact(p.Projects)
	return p
}

// compact trims every entry and drops the empty ones, keeping order.
func compact(items []string) []string {
	if len(items) == 0 {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}

	return result
}

func cloneStrings(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
