package config

import (
	_ "embed"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed site.yaml
var siteDeclaration []byte

// Profiles shipped in the embedded declaration.
const (
	ProfileProduction  = "production"
	ProfileDevelopment = "development"
	ProfileGitHubPages = "github-pages"
)

type settings map[string]interface{}

type declarationFile struct {
	Base     settings            `yaml:"base"`
	Profiles map[string]settings `yaml:"profiles"`
}

// Declaration is a parsed settings file: a base block shared by every
// profile and the per-profile overrides. It is read-only once parsed.
type Declaration struct {
	base     settings
	profiles map[string]settings
}

func ParseDeclaration(data []byte) (*Declaration, error) {
	var file declarationFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, &ConfigurationError{Field: "declaration", Reason: "invalid YAML", Err: err}
	}

	return &Declaration{base: file.Base, profiles: file.Profiles}, nil
}

func ReadDeclaration(path string) (*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading declaration %s", path)
	}

	return ParseDeclaration(data)
}

// DefaultDeclaration returns the declaration embedded in the binary.
func DefaultDeclaration() (*Declaration, error) {
	return ParseDeclaration(siteDeclaration)
}

// Profiles returns the declared profile names in sorted order.
func (d *Declaration) Profiles() []string {
	names := make([]string, 0, len(d.profiles))
	for name := range d.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve overlays the profile on the base block. Whole keys are replaced,
// so a null in the profile clears a base value.
func (d *Declaration) resolve(profile string) (settings, error) {
	if profile == "" {
		return nil, &ConfigurationError{Field: "profile", Reason: "no profile selected"}
	}
	if strings.IndexFunc(profile, unicode.IsControl) >= 0 {
		return nil, &ConfigurationError{Profile: profile, Field: "profile", Reason: "profile name contains control characters"}
	}
	overrides, ok := d.profiles[profile]
	if !ok {
		return nil, &ConfigurationError{Profile: profile, Field: "profile", Reason: "unknown profile"}
	}

	merged := make(settings, len(d.base)+len(overrides))
	for k, v := range d.base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged, nil
}

// decode converts a single raw setting into out, which must be a pointer.
// String settings only take YAML strings, so 5 or true is not read as "5"
// or "true".
func decode(value interface{}, out interface{}) error {
	if _, isString := out.(**string); isString && value != nil {
		if _, ok := value.(string); !ok {
			return errors.Errorf("expected a string, got %T", value)
		}
	}
	raw, err := yaml.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}
	return yaml.UnmarshalStrict(raw, out)
}
