// Package render turns a ResponseResult into the text shown in the
// response tabs
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmespath/go-jmespath"
	"github.com/studiowebux/porter/internal/executor"
	"github.com/studiowebux/porter/internal/types"
)

const (
	// HighlightStyle is the chroma style used for bodies
	HighlightStyle = "monokai"

	highlightFormatter = "terminal256"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	redirectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	clientStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	serverStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Body returns the body view: indented JSON when the body parses, raw text
// otherwise, and the failure message for failed dispatches
func Body(r *types.ResponseResult) string {
	if r == nil {
		return ""
	}
	if !r.OK() {
		return r.Failure.Message
	}
	if pretty, ok := PrettyJSON(r.Body); ok {
		return pretty
	}
	return r.Body
}

// FilteredBody is Body with a JMESPath expression applied. An empty
// expression returns Body unchanged.
func FilteredBody(r *types.ResponseResult, expression string) (string, error) {
	if strings.TrimSpace(expression) == "" || !r.OK() {
		return Body(r), nil
	}
	return ApplyFilter(r.Body, expression)
}

// Headers returns the response headers as sorted "key: value" lines
func Headers(r *types.ResponseResult) string {
	if r == nil {
		return ""
	}
	if !r.OK() {
		return r.Failure.Message
	}

	keys := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", k, r.Headers[k])
	}
	return b.String()
}

// Raw returns the status line, duration, headers and body as one text
func Raw(r *types.ResponseResult) string {
	if r == nil {
		return ""
	}
	if !r.OK() {
		return r.Failure.Message
	}

	var b strings.Builder
	fmt.Fprintf(&b, "HTTP %s\n", r.StatusText())
	fmt.Fprintf(&b, "Duration: %s\n", executor.FormatDuration(r.DurationMs))
	if headers := Headers(r); headers != "" {
		b.WriteString("\n")
		b.WriteString(headers)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.Body)
	return b.String()
}

// StatusLine summarizes a result for the status bar, e.g.
// "200 OK | 12ms | 1.20KB". Failures show "Error" with no status code.
func StatusLine(r *types.ResponseResult) string {
	if r == nil {
		return ""
	}
	if !r.OK() {
		return fmt.Sprintf("Error | %s", executor.FormatDuration(r.DurationMs))
	}
	line := fmt.Sprintf("%s | %s | %s", r.StatusText(), executor.FormatDuration(r.DurationMs), executor.FormatSize(len(r.Body)))
	if r.Truncated {
		line += " | truncated"
	}
	return line
}

// StatusStyle picks the colour for the status line
func StatusStyle(r *types.ResponseResult) lipgloss.Style {
	switch {
	case !r.OK():
		return failureStyle
	case executor.IsSuccessStatus(r.StatusCode):
		return successStyle
	case executor.IsClientErrorStatus(r.StatusCode):
		return clientStyle
	case executor.IsServerErrorStatus(r.StatusCode):
		return serverStyle
	default:
		return redirectStyle
	}
}

// PrettyJSON indents body if it is valid JSON, keeping key order
func PrettyJSON(body string) (string, bool) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return body, false
	}
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(trimmed), "", "  "); err != nil {
		return body, false
	}
	return out.String(), true
}

// ApplyFilter evaluates a JMESPath expression against a JSON body
func ApplyFilter(body string, expression string) (string, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}
	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// IsValidFilter checks if an expression is valid JMESPath syntax
func IsValidFilter(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}

// Highlight colours text for the terminal when it is JSON. Anything else,
// or a highlighter failure, returns text unchanged.
func Highlight(text string) string {
	if !json.Valid([]byte(strings.TrimSpace(text))) {
		return text
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, "json", highlightFormatter, HighlightStyle); err != nil {
		return text
	}
	return buf.String()
}
