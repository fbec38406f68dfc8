package updeto

import "context"

// Provider is the base capability every update backend must implement: a
// status-only check whose failures are collapsed into NoResults. It is a
// total function over its declared return type - it never reports an error.
type Provider interface {
	// CheckStatus determines how the installed version relates to the
	// published one. Any lookup failure yields NoResults.
	CheckStatus(ctx context.Context) LookupResult
}

// ErrorAwareProvider is a Provider that can additionally surface the lookup
// error taxonomy instead of swallowing failures.
type ErrorAwareProvider interface {
	Provider

	// CheckStatusDetailed is CheckStatus with the underlying error, if any,
	// surfaced verbatim.
	CheckStatusDetailed(ctx context.Context) (LookupResult, error)
}

// InfoProvider is a Provider that can additionally return the rich UpdateInfo
// envelope. Failures are collapsed into a NoResults envelope.
type InfoProvider interface {
	Provider

	// CheckInfo returns the full result envelope for a check. On failure the
	// returned envelope carries Result == NoResults.
	CheckInfo(ctx context.Context) *UpdateInfo
}

// ErrorAwareInfoProvider is the richest capability tier: the full envelope
// with the underlying error surfaced.
type ErrorAwareInfoProvider interface {
	Provider

	// CheckInfoDetailed returns the full result envelope, or the lookup
	// error when the check could not complete.
	CheckInfoDetailed(ctx context.Context) (*UpdateInfo, error)
}
