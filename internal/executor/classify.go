package executor

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/studiowebux/porter/internal/types"
)

// classify maps a transport error onto the failure taxonomy.
// Timeouts are checked first: a dial that hits the deadline is a timeout,
// not a connection failure.
func classify(err error) types.ErrorKind {
	if isTimeout(err) {
		return types.TimeoutError
	}
	if isConnectionError(err) {
		return types.ConnectionError
	}
	return types.TransportError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}

	return isTLSError(err)
}

func isTLSError(err error) bool {
	var (
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		alertErr    tls.AlertError
		unknownAuth x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		invalidCert x509.CertificateInvalidError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidCert)
}

// describeError turns an error chain into a short, actionable hint
func describeError(err error) string {
	if err == nil {
		return ""
	}

	if isTimeout(err) {
		return "Request timeout - check URL and try increasing request_timeout in the config (default: 30s)"
	}
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	var unknownAuth x509.UnknownAuthorityError
	if errors.As(err, &unknownAuth) {
		return "TLS certificate signed by unknown authority - disable verify_tls in the config to accept it (insecure)"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var errno syscall.Errno
		if errors.As(opErr.Err, &errno) {
			switch errno {
			case syscall.ECONNREFUSED:
				return "Connection refused - check if server is running and port is correct"
			case syscall.ECONNRESET:
				return "Connection reset by server - server may have crashed or network issue occurred"
			case syscall.ENETUNREACH:
				return "Network unreachable - check network connection and firewall settings"
			case syscall.EHOSTUNREACH:
				return "Host unreachable - check if server is online and accessible"
			}
		}
	}

	return describeErrorString(err.Error())
}

// describeErrorString is the string-matching fallback for errors that carry
// no useful type information
func describeErrorString(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	switch {
	case strings.Contains(errLower, "context canceled"):
		return "Request cancelled"

	case strings.Contains(errLower, "deadline exceeded"):
		return "Request timeout - check URL and try increasing request_timeout in the config (default: 30s)"

	// Proxy errors often contain "connection refused", so check them first
	case strings.Contains(errLower, "proxy"):
		return "Proxy connection failed - verify HTTP_PROXY / HTTPS_PROXY settings"

	case strings.Contains(errLower, "no such host"),
		strings.Contains(errLower, "dial tcp: lookup"):
		return "DNS resolution failed - verify hostname is correct and network is available"

	case strings.Contains(errLower, "connection refused"):
		return "Connection refused - check if server is running and port is correct"

	case strings.Contains(errLower, "connection reset"):
		return "Connection reset by server - server may have crashed or network issue occurred"

	case strings.Contains(errLower, "network is unreachable"),
		strings.Contains(errLower, "no route to host"):
		return "Network unreachable - check network connection and firewall settings"

	case strings.Contains(errLower, "tls"),
		strings.Contains(errLower, "ssl"),
		strings.Contains(errLower, "certificate"),
		strings.Contains(errLower, "x509"):
		return describeTLSError(errStr)

	case strings.Contains(errLower, "stopped after") && strings.Contains(errLower, "redirect"):
		return "Too many redirects - check server configuration or URL"

	case strings.Contains(errLower, "invalid url"),
		strings.Contains(errLower, "unsupported protocol"),
		strings.Contains(errLower, "no host in request url"):
		return "Invalid URL - verify the URL format and protocol (http/https)"

	case strings.Contains(errLower, "eof"):
		return "Connection closed unexpectedly - server may have terminated the connection prematurely"

	case strings.Contains(errLower, "timeout"),
		strings.Contains(errLower, "timed out"):
		return "Connection timeout - server took too long to respond, try increasing timeout"

	case strings.Contains(errLower, "malformed http"):
		return "Malformed HTTP response - server replied with something that is not HTTP"
	}

	return "Request failed: " + errStr
}

// describeTLSError gives specific guidance for certificate and handshake errors
func describeTLSError(errStr string) string {
	errLower := strings.ToLower(errStr)

	switch {
	case strings.Contains(errLower, "unknown authority"),
		strings.Contains(errLower, "certificate is not trusted"):
		return "TLS certificate verification failed - certificate is not trusted. Disable verify_tls in the config to accept it (insecure)"

	case strings.Contains(errLower, "expired"):
		return "TLS certificate has expired - contact server administrator or disable verify_tls (insecure)"

	case strings.Contains(errLower, "certificate is valid for"),
		strings.Contains(errLower, "doesn't match"):
		return "TLS hostname mismatch - certificate doesn't match the requested hostname"

	case strings.Contains(errLower, "handshake"):
		return "TLS handshake failed - check TLS version compatibility and cipher suites"

	case strings.Contains(errLower, "bad certificate"):
		return "TLS bad certificate - client certificate may be invalid or not accepted by server"
	}

	return "TLS/SSL error - check certificate configuration and TLS settings: " + errStr
}
