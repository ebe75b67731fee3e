package pelican

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nyirog/nyirog-site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProduction(t *testing.T) {
	site, err := config.Load(config.ProfileProduction)
	require.NoError(t, err)

	out, err := Render(site)
	require.NoError(t, err)

	content := string(out)
	for _, line := range []string{
		"AUTHOR = 'Nyirő Gergő'\n",
		"SITENAME = 'nyirog'\n",
		"SITEURL = 'https://nyiro.name'\n",
		"DISPLAY_PAGES_ON_MENU = True\n",
		"PATH = 'content'\n",
		"TIMEZONE = 'Europe/Budapest'\n",
		"DEFAULT_LANG = 'en'\n",
		"FEED_DOMAIN = 'https://nyiro.name'\n",
		"FEED_ALL_ATOM = 'feeds/all.atom.xml'\n",
		"CATEGORY_FEED_ATOM = None\n",
		"TRANSLATION_FEED_ATOM = None\n",
		"AUTHOR_FEED_ATOM = None\n",
		"AUTHOR_FEED_RSS = None\n",
		"LINKS = (\n    ('Pelican', 'https://getpelican.com/'),\n)\n",
		"SOCIAL = (\n    ('github', 'https://github.com/nyirog'),\n    ('linkedin', 'https://www.linkedin.com/in/nyirog'),\n)\n",
		"DEFAULT_PAGINATION = 10\n",
		"RELATIVE_URLS = False\n",
	} {
		assert.Contains(t, content, line)
	}
}

func TestRenderDevelopmentDisablesFeeds(t *testing.T) {
	site, err := config.Load(config.ProfileDevelopment)
	require.NoError(t, err)

	out, err := Render(site)
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "FEED_ALL_ATOM = None\n")
	assert.Contains(t, content, "RELATIVE_URLS = True\n")
	assert.Contains(t, content, "development profile")
}

func TestRenderEmptyLinks(t *testing.T) {
	out, err := Render(config.Site{PaginationSize: 1})
	require.NoError(t, err)
	assert.Contains(t, string(out), "LINKS = ()\n")
}

func TestRenderKeepsProfileInsideComment(t *testing.T) {
	out, err := Render(config.Site{Profile: "x\rimport os\nprint(1)", PaginationSize: 1})
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# Generated from the x import os print(1) profile.")
	assert.NotContains(t, content, "\r")
	for _, line := range strings.Split(content, "\n") {
		assert.False(t, strings.HasPrefix(line, "import os"), line)
	}
}

func TestPyString(t *testing.T) {
	cases := map[string]string{
		"nyirog":      `'nyirog'`,
		"it's":        `'it\'s'`,
		`C:\content`:  `'C:\\content'`,
		"line\nbreak": `'line\nbreak'`,
		"<b>&</b>":    `'<b>&</b>'`,
	}
	for in, want := range cases {
		assert.Equal(t, want, string(pyString(in)), in)
	}
}

func TestWriteFile(t *testing.T) {
	site, err := config.Load(config.ProfileGitHubPages)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteFile(site, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SITEURL = 'https://nyirog.github.io'\n")
}
