// Package document holds the merged CV document model and its themed HTML
// rendering.
package document

import (
	"github.com/Naiitikk/cv-creator/internal/types"
)

// Document is the union of a CVRequest's structural fields and the generated
// text fields. It exists only to drive rendering; it is never persisted.
type Document struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	JobTitle       string   `json:"jobTitle"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Theme          string   `json:"cvTheme"`
	Languages      string   `json:"languages,omitempty"`
	Certifications string   `json:"certifications,omitempty"`
	Portfolio      string   `json:"portfolio,omitempty"`
	ProjectImages  []string `json:"projectImages,omitempty"`

	Summary               string          `json:"summary"`
	ExperienceDescription string          `json:"experienceDescription"`
	Skills                types.SkillList `json:"skills"`
}

// Merge combines a request with its generated content under an explicit
// field-ownership policy: structural fields (identity, contact, images,
// theme, languages, certifications, portfolio) always come from the
// submission with documented defaults applied; the generated fields (summary,
// experience description, skills) always come from the completion result.
func Merge(req *types.CVRequest, gen *types.GeneratedContent) *Document {
	filled := req.WithDefaults()
	return &Document{
		FirstName:      filled.FirstName,
		LastName:       filled.LastName,
		Email:          filled.Email,
		Phone:          filled.Phone,
		JobTitle:       filled.JobTitle,
		Company:        filled.Company,
		Location:       filled.Location,
		ProfilePicture: filled.ProfilePicture,
		Theme:          filled.Theme,
		Languages:      filled.Languages,
		Certifications: filled.Certifications,
		Portfolio:      filled.Portfolio,
		ProjectImages:  filled.ProjectImages,

		Summary:               gen.Summary,
		ExperienceDescription: gen.ExperienceDescription,
		Skills:                gen.Skills,
	}
}

// FullName returns the display name for the document header.
func (d *Document) FullName() string {
	return d.FirstName + " " + d.LastName
}
