// Package types provides type definitions for structured data used throughout the cv-creator system.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default values substituted for optional CVRequest fields.
const (
	DefaultCompany          = "Previous Company"
	DefaultResponsibilities = "General responsibilities"
	DefaultAchievements     = "Key achievements"
	DefaultTheme            = "modern"
)

// SkillList is an ordered list of skills. On the wire it may arrive either as
// a comma-delimited string ("Go, SQL") or as a JSON array (["Go","SQL"]);
// both decode to the same trimmed list, so downstream code never branches on
// shape.
type SkillList []string

// UnmarshalJSON accepts a string or an array of strings and normalizes to a
// trimmed, empty-item-free list.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = SplitSkills(raw)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("skills must be a string or an array of strings: %w", err)
	}
	out := make(SkillList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*s = out
	return nil
}

// SplitSkills splits a comma-delimited skills string into a trimmed list,
// dropping empty items.
func SplitSkills(raw string) SkillList {
	parts := strings.Split(raw, ",")
	out := make(SkillList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Join renders the list as a single comma-joined phrase for prompt building.
func (s SkillList) Join() string {
	return strings.Join(s, ", ")
}

// Years is a years-of-experience value. Browsers submit it as a string ("5")
// while API clients may send a bare number; both decode to the same value.
type Years string

// UnmarshalJSON accepts a JSON string or number.
func (y *Years) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*y = Years(strings.TrimSpace(raw))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("experience must be a string or a number: %w", err)
	}
	*y = Years(n.String())
	return nil
}

// Value parses the years as a number. Returns an error for non-numeric input.
func (y Years) Value() (float64, error) {
	return strconv.ParseFloat(string(y), 64)
}

// CVRequest represents one raw form submission. It is immutable from the
// server's perspective: handlers read it, apply defaults into a copy, and
// never write back.
type CVRequest struct {
	FirstName        string    `json:"firstName" validate:"required"`
	LastName         string    `json:"lastName" validate:"required"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	JobTitle         string    `json:"jobTitle" validate:"required"`
	Experience       Years     `json:"experience" validate:"required"`
	Skills           SkillList `json:"skills,omitempty"`
	Company          string    `json:"company,omitempty"`
	Responsibilities string    `json:"responsibilities,omitempty"`
	Achievements     string    `json:"achievements,omitempty"`
	Location         string    `json:"location,omitempty"`
	ProfilePicture   string    `json:"profilePicture,omitempty"`
	ProjectImages    []string  `json:"projectImages,omitempty"`
	Languages        string    `json:"languages,omitempty"`
	Certifications   string    `json:"certifications,omitempty"`
	Portfolio        string    `json:"portfolio,omitempty"`
	Theme            string    `json:"cvTheme,omitempty"`
}

// CoverLetterRequest represents a cover-letter generation request.
// All three fields are required.
type CoverLetterRequest struct {
	JobTitle   string `json:"jobTitle" validate:"required"`
	Company    string `json:"company" validate:"required"`
	Experience Years  `json:"experience" validate:"required"`
}

// GeneratedContent holds the text fragments produced by the completion
// service for exactly one CVRequest. It is never persisted.
type GeneratedContent struct {
	Summary               string    `json:"summary"`
	ExperienceDescription string    `json:"experienceDescription"`
	Skills                SkillList `json:"skills"`
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

var validate = validator.New()

// Validate checks the required fields of a CVRequest and that years of
// experience parses as a non-negative number. Returns *ErrValidation on
// failure so the HTTP layer can map it to a 400.
func (r *CVRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Message: "Missing required fields"}
	}
	years, err := r.Experience.Value()
	if err != nil || years < 0 {
		return &ErrValidation{Message: "Experience must be a non-negative number"}
	}
	return nil
}

// Validate checks the required fields of a CoverLetterRequest.
func (r *CoverLetterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Message: "Missing required fields"}
	}
	return nil
}

// WithDefaults returns a copy of the request with documented defaults filled
// in for optional fields: company, responsibilities, achievements, and theme.
// Location intentionally defaults to the empty string and the profile picture
// to absent.
func (r CVRequest) WithDefaults() CVRequest {
	if strings.TrimSpace(r.Company) == "" {
		r.Company = DefaultCompany
	}
	if strings.TrimSpace(r.Responsibilities) == "" {
		r.Responsibilities = DefaultResponsibilities
	}
	if strings.TrimSpace(r.Achievements) == "" {
		r.Achievements = DefaultAchievements
	}
	if strings.TrimSpace(r.Theme) == "" {
		r.Theme = DefaultTheme
	}
	return r
}
