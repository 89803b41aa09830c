package validator

import (
	"errors"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "empty", url: "", wantErr: ErrEmptyURL},
		{name: "whitespace only", url: "   ", wantErr: ErrEmptyURL},
		{name: "tabs and newlines", url: "\t\n", wantErr: ErrEmptyURL},
		{name: "missing scheme", url: "example.com", wantErr: ErrInvalidScheme},
		{name: "ftp scheme", url: "ftp://example.com", wantErr: ErrInvalidScheme},
		{name: "uppercase scheme", url: "HTTP://example.com", wantErr: ErrInvalidScheme},
		{name: "space inside", url: "http://a b", wantErr: ErrURLSpaces},
		{name: "http", url: "http://example.com", wantErr: nil},
		{name: "https with path", url: "https://api.example.com/users?id=1", wantErr: nil},
		{name: "surrounding whitespace", url: "  https://example.com  ", wantErr: nil},
		{name: "scheme only", url: "http://", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateURL(%q) = %v, want %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidationError_Messages(t *testing.T) {
	if ErrEmptyURL.Error() != "URL cannot be empty" {
		t.Errorf("got %q", ErrEmptyURL.Error())
	}
	if ErrInvalidScheme.Error() != "URL must start with http:// or https://" {
		t.Errorf("got %q", ErrInvalidScheme.Error())
	}
	if ErrURLSpaces.Error() != "URL cannot contain spaces" {
		t.Errorf("got %q", ErrURLSpaces.Error())
	}
}

func TestValidateURL_ErrorType(t *testing.T) {
	var verr ValidationError
	if !errors.As(ValidateURL("nope"), &verr) {
		t.Fatal("expected a ValidationError")
	}
}
