package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nfrund/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	require.Len(t, p.Projects, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{p.Projects[0].ID, p.Projects[1].ID, p.Projects[2].ID})
	require.Len(t, p.Skills, 4)
	assert.Equal(t, "Cam | Portfolio", p.Profile.SiteTitle())

	// Each call hands out independent slices.
	p.Projects[0].Title = "changed"
	assert.Equal(t, "E-Commerce Platform", Default().Projects[0].Title)
}

func TestLoadWithoutOverrides(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Cam", site.Profile.Name)
	assert.Contains(t, site.BioHTML, "<p>I'm a passionate full-stack developer")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	yamlDoc := `
profile:
  name: Jane
  tagline: Systems programmer
  bio: "Writes **Go**."
projects:
  - id: 7
    title: Folio
    tags: [Go, htmx]
    liveUrl: https://example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", site.Profile.Name)
	assert.Equal(t, "Systems programmer", site.Profile.Tagline)
	assert.Equal(t, "hello@example.com", site.Profile.Email, "unset fields keep their defaults")
	assert.Contains(t, site.BioHTML, "<strong>Go</strong>")

	require.Len(t, site.Projects, 1, "a projects list replaces the default list")
	assert.Equal(t, 7, site.Projects[0].ID)
	assert.Equal(t, []string{"Go", "htmx"}, site.Projects[0].Tags)
	assert.Len(t, site.Skills, 4)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_PROFILE_NAME", "Robin")
	site, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Robin", site.Profile.Name)
}

func TestLoadRejectsDuplicateProjectIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	yamlDoc := `
projects:
  - id: 1
    title: A
  - id: 1
    title: B
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateProject))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMarkdownOmitsRawHTML(t *testing.T) {
	out, err := Markdown("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "&lt;script&gt;", "raw HTML is dropped, not escaped")
	assert.Contains(t, out, "<p>hello <!-- raw HTML omitted -->")

	block, err := Markdown("<div onclick=\"x()\">boxed</div>\n\nafter")
	require.NoError(t, err)
	assert.NotContains(t, block, "onclick")
	assert.Contains(t, block, "<!-- raw HTML omitted -->")
	assert.Contains(t, block, "<p>after</p>")
}
