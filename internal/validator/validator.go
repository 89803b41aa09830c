// Package validator performs the pre-flight URL checks that run before any
// network activity. Deeper URL syntax problems are left to the transport.
package validator

import "strings"

// ValidationError is returned when a URL is rejected before dispatch
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrEmptyURL      ValidationError = "URL cannot be empty"
	ErrInvalidScheme ValidationError = "URL must start with http:// or https://"
	ErrURLSpaces     ValidationError = "URL cannot contain spaces"
)

// ValidateURL checks, in order: non-empty, http(s) scheme prefix, no spaces.
// Leading and trailing whitespace is ignored.
func ValidateURL(raw string) error {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ErrEmptyURL
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return ErrInvalidScheme
	}

	if strings.Contains(url, " ") {
		return ErrURLSpaces
	}

	return nil
}
