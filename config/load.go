package config

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"golang.org/x/net/idna"
	"golang.org/x/text/language"
)

// Load resolves profile from the embedded declaration.
func Load(profile string) (Site, error) {
	decl, err := DefaultDeclaration()
	if err != nil {
		return Site{}, err
	}
	return decl.Load(profile)
}

// rawSettings holds the declared values before validation. A nil pointer
// means the setting is absent or null.
type rawSettings struct {
	author              *string
	siteName            *string
	siteURL             *string
	contentPath         *string
	timezone            *string
	defaultLang         *string
	feedDomain          *string
	feedAllAtom         *string
	categoryFeedAtom    *string
	translationFeedAtom *string
	authorFeedAtom      *string
	authorFeedRSS       *string
	links               []Link
	social              []Link
	pagination          *int
	relativeURLs        *bool
	displayPagesOnMenu  *bool
}

func (r *rawSettings) targets() map[string]interface{} {
	return map[string]interface{}{
		"AUTHOR":                &r.author,
		"SITENAME":              &r.siteName,
		"SITEURL":               &r.siteURL,
		"PATH":                  &r.contentPath,
		"TIMEZONE":              &r.timezone,
		"DEFAULT_LANG":          &r.defaultLang,
		"FEED_DOMAIN":           &r.feedDomain,
		"FEED_ALL_ATOM":         &r.feedAllAtom,
		"CATEGORY_FEED_ATOM":    &r.categoryFeedAtom,
		"TRANSLATION_FEED_ATOM": &r.translationFeedAtom,
		"AUTHOR_FEED_ATOM":      &r.authorFeedAtom,
		"AUTHOR_FEED_RSS":       &r.authorFeedRSS,
		"LINKS":                 &r.links,
		"SOCIAL":                &r.social,
		"DEFAULT_PAGINATION":    &r.pagination,
		"RELATIVE_URLS":         &r.relativeURLs,
		"DISPLAY_PAGES_ON_MENU": &r.displayPagesOnMenu,
	}
}

// Load resolves profile against the declaration and validates the result.
// Either a complete Site or a *ConfigurationError is returned.
func (d *Declaration) Load(profile string) (Site, error) {
	merged, err := d.resolve(profile)
	if err != nil {
		return Site{}, err
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	var raw rawSettings
	targets := raw.targets()
	for _, name := range names {
		out, ok := targets[name]
		if !ok {
			return Site{}, &ConfigurationError{Profile: profile, Field: name, Reason: "unknown setting"}
		}
		if err := decode(merged[name], out); err != nil {
			return Site{}, &ConfigurationError{Profile: profile, Field: name, Reason: "malformed value", Err: err}
		}
	}

	site, err := raw.validate()
	if err != nil {
		var cerr *ConfigurationError
		if errors.As(err, &cerr) {
			cerr.Profile = profile
		}
		return Site{}, err
	}
	site.Profile = profile

	return site, nil
}

func (r *rawSettings) validate() (Site, error) {
	var (
		site Site
		err  error
	)

	if site.Author, err = required("AUTHOR", r.author); err != nil {
		return Site{}, err
	}
	if site.Name, err = required("SITENAME", r.siteName); err != nil {
		return Site{}, err
	}
	if site.URL, err = required("SITEURL", r.siteURL); err != nil {
		return Site{}, err
	}
	if err := checkSiteURL(site.URL); err != nil {
		return Site{}, invalid("SITEURL", err)
	}
	if site.ContentPath, err = required("PATH", r.contentPath); err != nil {
		return Site{}, err
	}

	if site.Timezone, err = required("TIMEZONE", r.timezone); err != nil {
		return Site{}, err
	}
	if err := checkTimezone(site.Timezone); err != nil {
		return Site{}, invalid("TIMEZONE", err)
	}

	lang, err := required("DEFAULT_LANG", r.defaultLang)
	if err != nil {
		return Site{}, err
	}
	if site.DefaultLanguage, err = languageCode(lang); err != nil {
		return Site{}, invalid("DEFAULT_LANG", err)
	}

	site.Feeds.Domain = site.URL
	if r.feedDomain != nil {
		if site.Feeds.Domain, err = required("FEED_DOMAIN", r.feedDomain); err != nil {
			return Site{}, err
		}
		if err := checkSiteURL(site.Feeds.Domain); err != nil {
			return Site{}, invalid("FEED_DOMAIN", err)
		}
	}

	feeds := []struct {
		name string
		raw  *string
		out  *Feed
	}{
		{"FEED_ALL_ATOM", r.feedAllAtom, &site.Feeds.AllAtom},
		{"CATEGORY_FEED_ATOM", r.categoryFeedAtom, &site.Feeds.CategoryAtom},
		{"TRANSLATION_FEED_ATOM", r.translationFeedAtom, &site.Feeds.TranslationAtom},
		{"AUTHOR_FEED_ATOM", r.authorFeedAtom, &site.Feeds.AuthorAtom},
		{"AUTHOR_FEED_RSS", r.authorFeedRSS, &site.Feeds.AuthorRSS},
	}
	for _, f := range feeds {
		if *f.out, err = feedPath(f.name, f.raw); err != nil {
			return Site{}, err
		}
	}

	if err := checkLinks("LINKS", r.links); err != nil {
		return Site{}, err
	}
	site.Links = r.links
	if err := checkLinks("SOCIAL", r.social); err != nil {
		return Site{}, err
	}
	site.Social = r.social

	if r.pagination == nil {
		return Site{}, missing("DEFAULT_PAGINATION")
	}
	if *r.pagination <= 0 {
		return Site{}, &ConfigurationError{Field: "DEFAULT_PAGINATION", Reason: "must be greater than zero"}
	}
	site.PaginationSize = *r.pagination

	if r.relativeURLs != nil {
		site.RelativeURLs = *r.relativeURLs
	}
	if r.displayPagesOnMenu != nil {
		site.DisplayPagesOnMenu = *r.displayPagesOnMenu
	}

	return site, nil
}

func missing(field string) error {
	return &ConfigurationError{Field: field, Reason: "required setting is missing"}
}

func invalid(field string, err error) error {
	return &ConfigurationError{Field: field, Reason: "invalid value", Err: err}
}

func required(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", missing(field)
	}
	return *v, nil
}

// checkSiteURL accepts an absolute http(s) URL or a bare hostname. The host
// must follow the STD3 label rules either way.
func checkSiteURL(s string) error {
	if strings.ContainsAny(s, " \t\n") {
		return errors.Errorf("%q contains whitespace", s)
	}

	var u *url.URL
	if strings.Contains(s, "://") {
		parsed, err := url.Parse(s)
		if err != nil {
			return errors.WithStack(err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return errors.Errorf("unsupported scheme %q", parsed.Scheme)
		}
		u = parsed
	} else {
		parsed, err := url.Parse("//" + s)
		if err != nil {
			return errors.Errorf("%q is neither an absolute URL nor a hostname", s)
		}
		u = parsed
	}

	return checkHostname(u.Hostname())
}

func checkHostname(host string) error {
	if host == "" {
		return errors.New("missing host")
	}
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return errors.Wrapf(err, "invalid hostname %q", host)
	}
	return nil
}

func checkTimezone(name string) error {
	if name == "Local" {
		return errors.New("Local is not an IANA timezone")
	}
	_, err := time.LoadLocation(name)
	return errors.WithStack(err)
}

// languageCode validates a two letter ISO 639-1 code and returns it in
// canonical lower case.
func languageCode(code string) (string, error) {
	if len(code) != 2 {
		return "", errors.Errorf("%q is not a two letter ISO 639-1 code", code)
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return base.String(), nil
}

// feedPath keeps null as the disabled feed; it is never replaced by a
// generated default.
func feedPath(field string, v *string) (Feed, error) {
	if v == nil {
		return "", nil
	}
	p := *v
	if strings.TrimSpace(p) == "" {
		return "", &ConfigurationError{Field: field, Reason: "empty feed path, use null to disable the feed"}
	}
	if strings.Contains(p, "://") || path.IsAbs(p) {
		return "", &ConfigurationError{Field: field, Reason: "feed path must be relative to the output root"}
	}
	if clean := path.Clean(p); clean == ".." || strings.HasPrefix(clean, "../") {
		return "", &ConfigurationError{Field: field, Reason: "feed path escapes the output root"}
	}
	return Feed(p), nil
}

func checkLinks(field string, links []Link) error {
	for i, link := range links {
		if strings.TrimSpace(link.Label) == "" {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("entry %d has an empty label", i)}
		}
		if strings.TrimSpace(link.URL) == "" {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("entry %d (%s) has an empty url", i, link.Label)}
		}
		if _, err := url.Parse(link.URL); err != nil {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("entry %d (%s) has an invalid url", i, link.Label), Err: err}
		}
	}
	return nil
}
