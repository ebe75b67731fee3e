package config

import (
	"strings"

	"github.com/pkg/errors"
)

// Site is the resolved configuration handed to the static-site generator.
// Values are produced by Declaration.Load and are not modified afterwards.
type Site struct {
	Profile            string `yaml:"profile"`
	Author             string `yaml:"author"`
	Name               string `yaml:"site_name"`
	URL                string `yaml:"site_url"`
	ContentPath        string `yaml:"content_path"`
	Timezone           string `yaml:"timezone"`
	DefaultLanguage    string `yaml:"default_language"`
	Feeds              Feeds  `yaml:"feeds"`
	Links              []Link `yaml:"links"`
	Social             []Link `yaml:"social"`
	PaginationSize     int    `yaml:"pagination_size"`
	RelativeURLs       bool   `yaml:"relative_urls"`
	DisplayPagesOnMenu bool   `yaml:"display_pages_on_menu"`
}

// Feed is the relative output path of a syndication feed. The zero Feed
// means the feed is not generated.
type Feed string

func (f Feed) Enabled() bool {
	return f != ""
}

// MarshalYAML renders a disabled feed as null.
func (f Feed) MarshalYAML() (interface{}, error) {
	if !f.Enabled() {
		return nil, nil
	}
	return string(f), nil
}

type Feeds struct {
	Domain          string `yaml:"domain"`
	AllAtom         Feed   `yaml:"all_atom"`
	CategoryAtom    Feed   `yaml:"category_atom"`
	TranslationAtom Feed   `yaml:"translation_atom"`
	AuthorAtom      Feed   `yaml:"author_atom"`
	AuthorRSS       Feed   `yaml:"author_rss"`
}

// Enabled reports whether at least one feed is generated.
func (f Feeds) Enabled() bool {
	for _, feed := range []Feed{f.AllAtom, f.CategoryAtom, f.TranslationAtom, f.AuthorAtom, f.AuthorRSS} {
		if feed.Enabled() {
			return true
		}
	}
	return false
}

// FeedURL returns the absolute link of feed under the feed domain, or "" when
// the feed is disabled.
func (s Site) FeedURL(feed Feed) string {
	if !feed.Enabled() {
		return ""
	}
	return strings.TrimSuffix(s.Feeds.Domain, "/") + "/" + strings.TrimPrefix(string(feed), "/")
}

// Link is a labelled URL, declared as a two element [label, url] sequence.
type Link struct {
	Label string
	URL   string
}

func (l *Link) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var pair []string
	if err := unmarshal(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("expected a [label, url] pair, got %d elements", len(pair))
	}
	l.Label, l.URL = pair[0], pair[1]
	return nil
}

func (l Link) MarshalYAML() (interface{}, error) {
	return []string{l.Label, l.URL}, nil
}
