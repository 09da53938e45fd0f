package fetcher

import (
	"errors"
	"fmt"

	pkgHTTP "percept-srv/pkg/http"
)

// Kind classifies a fetch failure. These are the only failure kinds a
// Source may signal; everything upstream degrades them into per-source
// error entries rather than aborting the request.
type Kind string

const (
	KindNotConfigured Kind = "not_configured"
	KindNotFound      Kind = "not_found"
	KindRateLimited   Kind = "rate_limited"
	KindUpstream      Kind = "upstream_error"
	KindTimeout       Kind = "timeout"
)

// Error is a typed fetch failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the typed fetch error, wrapping unknown errors as
// upstream failures so every fetch resolves to a classified result.
func AsError(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{Kind: KindUpstream, Message: err.Error()}
}

// wrapTransport classifies a transport-level failure from the HTTP
// client. Deadline expiry becomes a Timeout, anything else Upstream.
func wrapTransport(platform string, err error) *Error {
	if pkgHTTP.IsTimeout(err) {
		return newError(KindTimeout, "Request to %s timed out", platform)
	}
	return newError(KindUpstream, "%s request failed: %v", platform, err)
}
