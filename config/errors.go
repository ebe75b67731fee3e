package config

import "fmt"

// ConfigurationError reports a required setting that is missing or
// malformed. It is fatal: no partial Site accompanies it.
type ConfigurationError struct {
	Profile string
	Field   string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Profile != "" {
		msg += fmt.Sprintf(" (profile %q)", e.Profile)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
