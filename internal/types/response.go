package types

import "strconv"

// ErrorKind classifies a failed dispatch
type ErrorKind int

const (
	// TimeoutError means the deadline expired before a response was read
	TimeoutError ErrorKind = iota + 1
	// ConnectionError covers DNS, refused, reset and TLS handshake failures
	ConnectionError
	// TransportError is every other transport-level fault
	TransportError
)

func (k ErrorKind) String() string {
	switch k {
	case TimeoutError:
		return "TimeoutError"
	case ConnectionError:
		return "ConnectionError"
	case TransportError:
		return "TransportError"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Failure describes why a dispatch produced no response
type Failure struct {
	Kind    ErrorKind
	Message string
	// Hint is a short, actionable explanation for the status bar
	Hint string
}

// ResponseResult is the outcome of one dispatch: a response, or a Failure.
// DurationMs is populated in both cases.
type ResponseResult struct {
	StatusCode int
	Headers    map[string]string
	Body       string
	DurationMs int64
	Truncated  bool
	Failure    *Failure
}

// OK reports whether a response was received (any status code)
func (r *ResponseResult) OK() bool {
	return r != nil && r.Failure == nil
}

var statusPhrases = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
}

// StatusText renders a status code with its phrase, e.g. "404 Not Found".
// Codes without a known phrase render as the bare number.
func StatusText(code int) string {
	if phrase, ok := statusPhrases[code]; ok {
		return strconv.Itoa(code) + " " + phrase
	}
	return strconv.Itoa(code)
}

// StatusText renders the result's status code, or "Error" for failures
func (r *ResponseResult) StatusText() string {
	if !r.OK() {
		return "Error"
	}
	return StatusText(r.StatusCode)
}
