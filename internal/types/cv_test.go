package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillList_UnmarshalString(t *testing.T) {
	var s SkillList
	err := json.Unmarshal([]byte(`"a, b,c"`), &s)
	require.NoError(t, err)
	assert.Equal(t, SkillList{"a", "b", "c"}, s)
}

func TestSkillList_UnmarshalArray(t *testing.T) {
	var s SkillList
	err := json.Unmarshal([]byte(`["a"," b","c "]`), &s)
	require.NoError(t, err)
	assert.Equal(t, SkillList{"a", "b", "c"}, s)
}

func TestSkillList_NormalizationIsConsistent(t *testing.T) {
	// The delimited-string form and the list form must produce the same
	// chip set.
	var fromString, fromArray SkillList
	require.NoError(t, json.Unmarshal([]byte(`"a, b,c"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`["a","b","c"]`), &fromArray))
	assert.Equal(t, fromArray, fromString)
}

func TestSkillList_UnmarshalNull(t *testing.T) {
	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)
}

func TestSkillList_UnmarshalRejectsObjects(t *testing.T) {
	var s SkillList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestSkillList_DropsEmptyItems(t *testing.T) {
	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`"Go,, SQL ,"`), &s))
	assert.Equal(t, SkillList{"Go", "SQL"}, s)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, SkillList{"Python", "Rust"}, SplitSkills("Python, Rust"))
	assert.Empty(t, SplitSkills(""))
}

func TestYears_UnmarshalStringAndNumber(t *testing.T) {
	var fromString, fromNumber Years
	require.NoError(t, json.Unmarshal([]byte(`"5"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`5`), &fromNumber))
	assert.Equal(t, fromNumber, fromString)

	v, err := fromString.Value()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestCVRequest_ValidateRequiredFields(t *testing.T) {
	valid := CVRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		JobTitle:   "Software Engineer",
		Experience: "5",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CVRequest)
	}{
		{"missing first name", func(r *CVRequest) { r.FirstName = "" }},
		{"missing last name", func(r *CVRequest) { r.LastName = "" }},
		{"missing job title", func(r *CVRequest) { r.JobTitle = "" }},
		{"missing experience", func(r *CVRequest) { r.Experience = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			var verr *ErrValidation
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCVRequest_ValidateRejectsNegativeYears(t *testing.T) {
	req := CVRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		JobTitle:   "Software Engineer",
		Experience: "-1",
	}
	assert.Error(t, req.Validate())

	req.Experience = "abc"
	assert.Error(t, req.Validate())
}

func TestCVRequest_WithDefaults(t *testing.T) {
	req := CVRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		JobTitle:   "Software Engineer",
		Experience: "5",
	}
	filled := req.WithDefaults()

	assert.Equal(t, DefaultCompany, filled.Company)
	assert.Equal(t, DefaultResponsibilities, filled.Responsibilities)
	assert.Equal(t, DefaultAchievements, filled.Achievements)
	assert.Equal(t, DefaultTheme, filled.Theme)
	assert.Empty(t, filled.Location)
	assert.Empty(t, filled.ProfilePicture)

	// Submitted values survive.
	req.Company = "Acme"
	req.Theme = "classic"
	filled = req.WithDefaults()
	assert.Equal(t, "Acme", filled.Company)
	assert.Equal(t, "classic", filled.Theme)
}

func TestCoverLetterRequest_Validate(t *testing.T) {
	req := CoverLetterRequest{JobTitle: "Backend Engineer", Company: "Acme", Experience: "3"}
	require.NoError(t, req.Validate())

	req.Company = ""
	assert.Error(t, req.Validate())
}
