package appstore

import (
	"errors"
	"strings"
	"time"
)

// Defaults and floors for lookup queries.
const (
	// DefaultBaseURL is the public iTunes lookup endpoint.
	DefaultBaseURL = "https://itunes.apple.com"

	// DefaultTimeout is the per-attempt request timeout.
	DefaultTimeout = 15 * time.Second

	// MinTimeout is the lowest per-attempt timeout a query may carry.
	MinTimeout = time.Second

	// DefaultRetryDelay is the constant pause between retry attempts.
	DefaultRetryDelay = 100 * time.Millisecond
)

// Query describes a single store lookup. A Query is constructed fresh per
// check and has no identity beyond the call it serves.
type Query struct {
	// BundleID is the application identifier to look up. Required.
	BundleID string

	// InstalledVersion is the locally installed version to compare against
	// the published one. Required.
	InstalledVersion string

	// Country optionally scopes the lookup to a storefront. Normalized to
	// an uppercase trimmed code; empty means unset.
	Country string

	// Timeout bounds each individual attempt, not the whole retry sequence.
	Timeout time.Duration

	// RetryCount is the number of additional attempts after the first.
	RetryCount int
}

// Validate checks that the query carries the required fields.
func (q *Query) Validate() error {
	if strings.TrimSpace(q.BundleID) == "" {
		return errors.New("bundle id is required")
	}
	if strings.TrimSpace(q.InstalledVersion) == "" {
		return errors.New("installed version is required")
	}
	return nil
}

// Normalize applies defaults and floors: the country code is trimmed and
// uppercased, the timeout defaults to DefaultTimeout and never drops below
// MinTimeout, and the retry count never drops below zero.
func (q *Query) Normalize() {
	q.Country = NormalizeCountry(q.Country)
	if q.Timeout == 0 {
		q.Timeout = DefaultTimeout
	}
	if q.Timeout < MinTimeout {
		q.Timeout = MinTimeout
	}
	if q.RetryCount < 0 {
		q.RetryCount = 0
	}
}

// NormalizeCountry trims and uppercases a storefront code ("us " -> "US").
// Empty input stays empty, meaning unset.
func NormalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
