package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		contentFile = ""
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Contains(t, run(t, "version"), "Folio v"+version)
}

func TestSections(t *testing.T) {
	out := run(t, "sections")
	assert.Contains(t, out, "#about")
	assert.Contains(t, out, "Projects")
	assert.Regexp(t, `hero\s+#hero\s+Hero\s+false`, out)
	assert.Regexp(t, `skills\s+#skills\s+Skills\s+true`, out)
}

func TestCheckDefaults(t *testing.T) {
	t.Setenv("CONTENT_FILE", "")
	out := run(t, "check")
	assert.Contains(t, out, "Content OK (built-in defaults)")
	assert.Contains(t, out, "Cam | Portfolio")
	assert.Contains(t, out, "E-Commerce Platform")
}

func TestCheckRejectsInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - id: 1\n  - id: 1\n"), 0o600))

	rootCmd.SetArgs([]string{"check", "--content", path})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { contentFile = "" })
	assert.Error(t, rootCmd.Execute())
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	out := run(t, "export", "--out", dir, "--dark")
	assert.Contains(t, out, "files to "+dir)

	for _, name := range []string{"index.html", "light.html", "dark.html", "static/css/site.css", "static/js/site.js"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `class="dark"`)
	exportDark = false
}

func TestFindRegistryKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("loads and type-checks the whole module")
	}
	services, err := findRegistryKeys("../../..")
	require.NoError(t, err)

	keys := map[string]string{}
	for _, s := range services {
		keys[s.Key] = s.Type
	}
	assert.Equal(t, "*metrics.Manager", keys["core.metrics"])
	assert.Equal(t, "domain.EmailSender", keys["core.email"])
	assert.Equal(t, "domain.ContactSink", keys["contact.sink"])
}
