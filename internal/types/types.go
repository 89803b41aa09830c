package types

import (
	"fmt"
	"strings"
)

// DefaultRequestName is used when a request is saved without a name
const DefaultRequestName = "Untitled Request"

// Method is an HTTP method in canonical uppercase form
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists the supported methods in selector order
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodHead,
	MethodOptions,
}

// ParseMethod resolves a method name case-insensitively
func ParseMethod(s string) (Method, error) {
	candidate := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range Methods {
		if m == candidate {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported HTTP method %q", s)
}

// RequestSpec describes one HTTP request to send.
// Values are built with NewRequestSpec and never modified afterwards.
type RequestSpec struct {
	Name    string  `json:"name" yaml:"name"`
	Method  Method  `json:"method" yaml:"method"`
	URL     string  `json:"url" yaml:"url"`
	Headers Headers `json:"headers" yaml:"headers"`
	Body    string  `json:"body" yaml:"body"`
}

// NewRequestSpec builds a RequestSpec from raw field values
func NewRequestSpec(name, method, url string, headers Headers, body string) (RequestSpec, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return RequestSpec{}, err
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultRequestName
	}
	return RequestSpec{
		Name:    name,
		Method:  m,
		URL:     url,
		Headers: NewHeaders(headers...),
		Body:    body,
	}, nil
}

// HasBody reports whether the body should be sent.
// Empty and whitespace-only bodies count as absent.
func (r RequestSpec) HasBody() bool {
	return strings.TrimSpace(r.Body) != ""
}

// Equal compares two specs field by field, including header order
func (r RequestSpec) Equal(other RequestSpec) bool {
	if r.Name != other.Name || r.Method != other.Method || r.URL != other.URL || r.Body != other.Body {
		return false
	}
	if len(r.Headers) != len(other.Headers) {
		return false
	}
	for i := range r.Headers {
		if r.Headers[i] != other.Headers[i] {
			return false
		}
	}
	return true
}
