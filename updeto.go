package updeto

import "context"

// Updeto is the single entry point for version checks. It wraps a Provider
// and exposes every check in three calling conventions - blocking, callback
// and single-shot channel - regardless of which capability tiers the wrapped
// provider implements.
//
// All call shapes are thin adapters over one canonical check; the business
// logic is never duplicated per convention. An Updeto is safe for concurrent
// use if its provider is.
type Updeto struct {
	provider Provider
	caps     capabilities
}

// capabilities holds the richer interfaces the provider supports, resolved
// once at construction so no call path performs speculative type assertions.
type capabilities struct {
	errorAware ErrorAwareProvider
	info       InfoProvider
	detailed   ErrorAwareInfoProvider
}

// New wraps the given provider. The provider's optional capabilities are
// probed exactly once, here.
func New(provider Provider) *Updeto {
	u := &Updeto{provider: provider}
	if p, ok := provider.(ErrorAwareProvider); ok {
		u.caps.errorAware = p
	}
	if p, ok := provider.(InfoProvider); ok {
		u.caps.info = p
	}
	if p, ok := provider.(ErrorAwareInfoProvider); ok {
		u.caps.detailed = p
	}
	return u
}

// check is the canonical primitive every call shape derives from. It
// dispatches to the most capable operation the provider implements and
// synthesizes the rich envelope from poorer responses when needed: unknown
// fields stay empty and missing error channels stay nil. Total for any
// well-formed provider.
func (u *Updeto) check(ctx context.Context) (*UpdateInfo, error) {
	switch {
	case u.caps.detailed != nil:
		return u.caps.detailed.CheckInfoDetailed(ctx)
	case u.caps.info != nil:
		return u.caps.info.CheckInfo(ctx), nil
	case u.caps.errorAware != nil:
		result, err := u.caps.errorAware.CheckStatusDetailed(ctx)
		if err != nil {
			return nil, err
		}
		return &UpdateInfo{Result: result}, nil
	default:
		return &UpdateInfo{Result: u.provider.CheckStatus(ctx)}, nil
	}
}

// CheckStatus reports how the installed version relates to the published one.
// Errors are collapsed into NoResults; this shape never fails.
func (u *Updeto) CheckStatus(ctx context.Context) LookupResult {
	result, _ := u.CheckStatusDetailed(ctx)
	return result
}

// CheckStatusDetailed is CheckStatus with the lookup error, if any, surfaced.
func (u *Updeto) CheckStatusDetailed(ctx context.Context) (LookupResult, error) {
	info, err := u.check(ctx)
	if err != nil {
		return NoResults, err
	}
	return info.Result, nil
}

// CheckInfo returns the rich result envelope. Errors are collapsed into a
// NoResults envelope; this shape never fails.
func (u *Updeto) CheckInfo(ctx context.Context) *UpdateInfo {
	info, err := u.check(ctx)
	if err != nil || info == nil {
		return &UpdateInfo{Result: NoResults}
	}
	return info
}

// CheckInfoDetailed returns the rich result envelope, or the lookup error
// when the check could not complete.
func (u *Updeto) CheckInfoDetailed(ctx context.Context) (*UpdateInfo, error) {
	return u.check(ctx)
}
