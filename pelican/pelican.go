// Package pelican hands a resolved site configuration to Pelican by writing
// it out as the pelicanconf.py settings module the generator reads.
package pelican

import (
	_ "embed"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/gobuffalo/plush"
	"github.com/nyirog/nyirog-site/config"
	"github.com/pkg/errors"
)

// FileName is the settings module Pelican loads by default.
const FileName = "pelicanconf.py"

//go:embed pelicanconf.py.plush
var settingsTemplate string

// Render returns the Python settings module for site.
func Render(site config.Site) ([]byte, error) {
	tmpl, err := plush.Parse(settingsTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing settings template")
	}

	ctx := plush.NewContext()
	// Values are pre-rendered Python literals; template.HTML keeps plush from
	// escaping the quotes.
	ctx.Set("profile", template.HTML(commentText(site.Profile)))
	ctx.Set("author", pyString(site.Author))
	ctx.Set("siteName", pyString(site.Name))
	ctx.Set("siteURL", pyString(site.URL))
	ctx.Set("displayPagesOnMenu", pyBool(site.DisplayPagesOnMenu))
	ctx.Set("contentPath", pyString(site.ContentPath))
	ctx.Set("timezone", pyString(site.Timezone))
	ctx.Set("defaultLang", pyString(site.DefaultLanguage))
	ctx.Set("feedDomain", pyString(site.Feeds.Domain))
	ctx.Set("feedAllAtom", pyFeed(site.Feeds.AllAtom))
	ctx.Set("categoryFeedAtom", pyFeed(site.Feeds.CategoryAtom))
	ctx.Set("translationFeedAtom", pyFeed(site.Feeds.TranslationAtom))
	ctx.Set("authorFeedAtom", pyFeed(site.Feeds.AuthorAtom))
	ctx.Set("authorFeedRSS", pyFeed(site.Feeds.AuthorRSS))
	ctx.Set("links", pyPairs(site.Links))
	ctx.Set("social", pyPairs(site.Social))
	ctx.Set("pagination", template.HTML(strconv.Itoa(site.PaginationSize)))
	ctx.Set("relativeURLs", pyBool(site.RelativeURLs))

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error executing settings template")
	}

	return []byte(out), nil
}

// WriteFile renders site into dir/pelicanconf.py and returns the written path.
func WriteFile(site config.Site, dir string) (string, error) {
	content, err := Render(site)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", errors.WithStack(err)
	}

	path := filepath.Join(dir, FileName)
	err = os.WriteFile(path, content, 0644)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return path, nil
}

func pyString(s string) template.HTML {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return template.HTML(b.String())
}

// commentText flattens s so it cannot break out of a "#" comment line.
func commentText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
			return ' '
		}
		return r
	}, s)
}

func pyBool(v bool) template.HTML {
	if v {
		return "True"
	}
	return "False"
}

// pyFeed renders a disabled feed as None so Pelican skips it.
func pyFeed(f config.Feed) template.HTML {
	if !f.Enabled() {
		return "None"
	}
	return pyString(string(f))
}

func pyPairs(links []config.Link) template.HTML {
	if len(links) == 0 {
		return "()"
	}

	var b strings.Builder
	b.WriteString("(\n")
	for _, l := range links {
		b.WriteString("    (")
		b.WriteString(string(pyString(l.Label)))
		b.WriteString(", ")
		b.WriteString(string(pyString(l.URL)))
		b.WriteString("),\n")
	}
	b.WriteString(")")
	return template.HTML(b.String())
}
