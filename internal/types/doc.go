/*
Package types defines the data model shared by every porter component.

# Requests

RequestSpec is the immutable description of one request: name, method, URL,
ordered headers and an optional body. Build it with NewRequestSpec, which
normalizes the method to uppercase and applies the header rules:

  - blank header names are dropped
  - a repeated name keeps its first position and takes the last value
  - order is preserved for display and persistence

A body that is empty or whitespace-only is treated as absent (HasBody is
false) and is never sent on the wire.

# Responses

ResponseResult holds either a received response (status, headers, body,
truncation flag) or a Failure classified as TimeoutError, ConnectionError or
TransportError. DurationMs is always set.

StatusText maps a fixed set of common codes to their phrase:

	types.StatusText(404) // "404 Not Found"
	types.StatusText(418) // "418"

# Serialization

Headers encode as a JSON object or YAML mapping whose key order survives a
round trip, so a saved request loads back exactly as it was composed.
*/
package types
