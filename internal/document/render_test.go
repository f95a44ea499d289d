package document

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naiitikk/cv-creator/internal/types"
)

func renderToDoc(t *testing.T, d *Document) *goquery.Document {
	t.Helper()
	html, err := d.RenderHTML()
	require.NoError(t, err)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return parsed
}

func fullDocument() *Document {
	return &Document{
		FirstName:             "Ada",
		LastName:              "Lovelace",
		Email:                 "ada@example.com",
		Phone:                 "555-0100",
		JobTitle:              "Software Engineer",
		Company:               "Analytical Engines Ltd",
		Location:              "London",
		Theme:                 "modern",
		Languages:             "English, French",
		Certifications:        "Chartered Engineer",
		Portfolio:             "https://example.com/ada",
		Summary:               "Pioneering engineer.",
		ExperienceDescription: "- Wrote the first program",
		Skills:                types.SkillList{"Mathematics", "Programming"},
	}
}

func TestRenderHTML_AllSectionsPresent(t *testing.T) {
	parsed := renderToDoc(t, fullDocument())

	assert.Contains(t, parsed.Find(".header h1").Text(), "Ada Lovelace")
	assert.Contains(t, parsed.Find(".header h2").Text(), "Analytical Engines Ltd")
	for _, id := range []string{"summary", "experience", "skills", "languages", "certifications", "portfolio"} {
		assert.Equal(t, 1, parsed.Find("#"+id).Length(), "section %s", id)
	}
}

func TestRenderHTML_EmptySectionsProduceNoMarkup(t *testing.T) {
	d := &Document{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		JobTitle:   "Software Engineer",
		Theme:      "modern",
	}
	parsed := renderToDoc(t, d)

	for _, id := range []string{"summary", "experience", "skills", "languages", "certifications", "portfolio", "projects"} {
		assert.Equal(t, 0, parsed.Find("#"+id).Length(), "section %s should be absent", id)
	}
	assert.Equal(t, 0, parsed.Find(".photo").Length())
}

func TestRenderHTML_SkillsRenderAsChips(t *testing.T) {
	parsed := renderToDoc(t, fullDocument())

	chips := parsed.Find("#skills .chip")
	require.Equal(t, 2, chips.Length())
	assert.Equal(t, "Mathematics", chips.First().Text())
}

func TestRenderHTML_ChipSetIdenticalForBothSkillShapes(t *testing.T) {
	chipTexts := func(skills types.SkillList) []string {
		d := fullDocument()
		d.Skills = skills
		var out []string
		renderToDoc(t, d).Find(".chip").Each(func(_ int, s *goquery.Selection) {
			out = append(out, s.Text())
		})
		return out
	}

	assert.Equal(t,
		chipTexts(types.SplitSkills("a, b,c")),
		chipTexts(types.SkillList{"a", "b", "c"}),
	)
}

func TestRenderHTML_InlineImagesSurviveEscaping(t *testing.T) {
	d := fullDocument()
	d.ProfilePicture = "data:image/png;base64,AAAA"
	d.ProjectImages = []string{"data:image/png;base64,BBBB", " "}

	parsed := renderToDoc(t, d)

	src, ok := parsed.Find(".photo img").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", src)

	// Blank entries are skipped.
	assert.Equal(t, 1, parsed.Find("#projects img").Length())
}

func TestRenderHTML_ThemeFallback(t *testing.T) {
	d := fullDocument()
	d.Theme = "no-such-theme"

	html, err := d.RenderHTML()
	require.NoError(t, err)
	// Modern preset header gradient ends in the brand primary color.
	assert.Contains(t, html, "#0066cc")
}

func TestRenderHTML_EscapesUserText(t *testing.T) {
	d := fullDocument()
	d.Summary = `<script>alert("x")</script>`

	html, err := d.RenderHTML()
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}
