package executor

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/studiowebux/porter/internal/types"
	"golang.org/x/net/html/charset"
)

const (
	// MaxBodySize is the decoded body length kept for display (5 MiB)
	MaxBodySize = 5 * 1024 * 1024

	// TruncationMarker is appended to bodies cut at MaxBodySize
	TruncationMarker = "\n\n[Response truncated at 5MB]"

	// DefaultTimeoutSeconds applies when Options.TimeoutSeconds is not positive
	DefaultTimeoutSeconds = 30.0

	// maxRawRead bounds how much of the wire body is read. Decoding from a
	// two-byte charset can halve the length, so twice the limit is enough to
	// tell whether the decoded text exceeds MaxBodySize.
	maxRawRead = 2*MaxBodySize + 4
)

// Options controls a single dispatch
type Options struct {
	VerifyTLS      bool
	TimeoutSeconds float64
}

func (o Options) timeout() float64 {
	if o.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds
	}
	return o.TimeoutSeconds
}

// Send performs the request described by spec and always returns a result.
// Faults are classified into a Failure rather than returned as errors.
// DurationMs runs from the start of this call to whichever outcome returns.
func Send(ctx context.Context, spec types.RequestSpec, opts Options) *types.ResponseResult {
	startTime := time.Now()
	elapsed := func() int64 { return time.Since(startTime).Milliseconds() }

	timeoutSeconds := opts.timeout()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSeconds*float64(time.Second)))
	defer cancel()

	var bodyReader io.Reader
	if spec.HasBody() {
		bodyReader = strings.NewReader(spec.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(spec.Method), strings.TrimSpace(spec.URL), bodyReader)
	if err != nil {
		return failure(types.TransportError, "Error: "+err.Error(), err, elapsed())
	}

	for _, h := range spec.Headers {
		if strings.EqualFold(h.Name, "Host") {
			httpReq.Host = h.Value
			continue
		}
		httpReq.Header.Set(h.Name, h.Value)
	}

	client := buildHTTPClient(opts.VerifyTLS)
	defer client.CloseIdleConnections()

	resp, err := client.Do(httpReq)
	if err != nil {
		return classifyFailure(err, timeoutSeconds, elapsed())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxRawRead))
	if err != nil {
		return classifyFailure(err, timeoutSeconds, elapsed())
	}
	duration := elapsed()

	// Duplicate header names keep their last value
	headers := make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		if len(values) > 0 {
			headers[key] = values[len(values)-1]
		}
	}

	body, truncated := truncateBody(decodeBody(raw, resp.Header.Get("Content-Type")))

	return &types.ResponseResult{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       body,
		DurationMs: duration,
		Truncated:  truncated,
	}
}

// buildHTTPClient creates a client that follows redirects and verifies
// certificates only when verifyTLS is set
func buildHTTPClient(verifyTLS bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !verifyTLS,
	}

	return &http.Client{
		Transport: transport,
	}
}

func classifyFailure(err error, timeoutSeconds float64, duration int64) *types.ResponseResult {
	switch kind := classify(err); kind {
	case types.TimeoutError:
		return failure(kind, fmt.Sprintf("Request timeout after %ss", formatSeconds(timeoutSeconds)), err, duration)
	case types.ConnectionError:
		return failure(kind, "Connection error: "+causeOf(err), err, duration)
	default:
		return failure(kind, "Error: "+causeOf(err), err, duration)
	}
}

func failure(kind types.ErrorKind, message string, err error, duration int64) *types.ResponseResult {
	return &types.ResponseResult{
		DurationMs: duration,
		Failure: &types.Failure{
			Kind:    kind,
			Message: message,
			Hint:    describeError(err),
		},
	}
}

// causeOf strips the url.Error wrapper, which only repeats method and URL
func causeOf(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// truncateBody cuts body to MaxBodySize bytes and appends the marker.
// The cut is byte-based and may split a multi-byte character.
func truncateBody(body string) (string, bool) {
	if len(body) <= MaxBodySize {
		return body, false
	}
	return body[:MaxBodySize] + TruncationMarker, true
}

// decodeBody converts raw to UTF-8 using the charset parameter of
// contentType. Bodies without a charset, or with an unknown one, are
// returned as-is.
func decodeBody(raw []byte, contentType string) string {
	if contentType == "" {
		return string(raw)
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(raw)
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return string(raw)
	}

	enc, _ := charset.Lookup(label)
	if enc == nil {
		return string(raw)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// formatSeconds renders whole numbers with one decimal ("30.0") and keeps
// fractional values as given ("2.5")
func formatSeconds(s float64) string {
	if s == math.Trunc(s) {
		return strconv.FormatFloat(s, 'f', 1, 64)
	}
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// FormatDuration formats duration in milliseconds to human-readable string
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// IsClientErrorStatus returns true if status code is 4xx
func IsClientErrorStatus(status int) bool {
	return status >= 400 && status < 500
}

// IsServerErrorStatus returns true if status code is 5xx
func IsServerErrorStatus(status int) bool {
	return status >= 500 && status < 600
}
