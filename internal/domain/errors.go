package domain

import "errors"

// Sentinel errors for the failure classes callers can act on. Wrapped with
// fmt.Errorf("...: %w", ...) along the way and matched with errors.Is at the
// transport boundary.
var (
	// ErrAuth means the platform rejected the bearer token. Never retried
	// here; short-lived tokens are reissued by the authorization flow.
	ErrAuth = errors.New("invalid or expired access token")

	// ErrStoreUnavailable means the durable store could not be reached or
	// rejected an operation.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUpstream means a platform call failed for a non-auth reason.
	ErrUpstream = errors.New("upstream fetch failed")
)
