/*
Package executor dispatches a single HTTP request and classifies the outcome.

Send never returns an error. Every fault becomes a types.Failure with one of
three kinds:
  - TimeoutError when the configured timeout expires
  - ConnectionError for DNS, refused, reset, unreachable and TLS failures
  - TransportError for everything else (bad URL, redirect loops, protocol errors)

Successful responses carry the status code, headers (last value wins on
duplicates), the body decoded from its declared charset, and the elapsed
time. Bodies longer than MaxBodySize are cut and suffixed with
TruncationMarker.

Each call builds its own client. Redirects are followed and certificate
verification follows Options.VerifyTLS.

	result := executor.Send(ctx, spec, executor.Options{VerifyTLS: true, TimeoutSeconds: 30})
	if !result.OK() {
		fmt.Println(result.Failure.Message)
	}
*/
package executor
