// Package appstore implements the store-backed update provider: a single
// HTTP lookup against the public iTunes catalog, compared against the
// installed version. It supports every updeto capability tier.
package appstore

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	updeto "github.com/manasv/updeto-go"
)

// Provider answers update checks by querying the iTunes lookup endpoint.
//
// Bundle id and installed version are fixed at construction; the storefront
// country and the learned app id are the only mutable state. The app id is a
// single-slot last-write-wins cache refreshed opportunistically after each
// successful lookup that returned a record - concurrent checks may overwrite
// it in completion order, and a stale value between calls is accepted.
type Provider struct {
	bundleID         string
	installedVersion string
	timeout          time.Duration
	retryCount       int

	client *lookupClient

	mu      sync.RWMutex
	country string
	appID   string
}

// Interface assertions: the store-backed provider implements every tier.
var (
	_ updeto.Provider               = (*Provider)(nil)
	_ updeto.ErrorAwareProvider     = (*Provider)(nil)
	_ updeto.InfoProvider           = (*Provider)(nil)
	_ updeto.ErrorAwareInfoProvider = (*Provider)(nil)
)

// Option configures a Provider.
type Option func(*Provider)

// WithCountry scopes lookups to a storefront. The code is normalized to an
// uppercase trimmed form; empty means the default storefront.
func WithCountry(country string) Option {
	return func(p *Provider) {
		p.country = NormalizeCountry(country)
	}
}

// WithTimeout sets the per-attempt request timeout. Values below MinTimeout
// are raised to it; zero keeps DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		p.timeout = timeout
	}
}

// WithRetryCount sets how many additional attempts follow a retryable
// failure. Negative values are treated as zero.
func WithRetryCount(count int) Option {
	return func(p *Provider) {
		p.retryCount = count
	}
}

// WithRetryDelay sets the constant pause between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(p *Provider) {
		if delay > 0 {
			p.client.retryDelay = delay
		}
	}
}

// WithHTTPClient substitutes the HTTP client used for lookups.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client.httpClient = client
		}
	}
}

// WithBaseURL points the provider at a different lookup endpoint, typically a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		if baseURL != "" {
			p.client.baseURL = baseURL
		}
	}
}

// WithAppID seeds the known store identifier, e.g. when the caller already
// holds it from a previous session.
func WithAppID(appID string) Option {
	return func(p *Provider) {
		p.appID = appID
	}
}

// WithLogger attaches a structured logger for attempt-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.client.logger = logger
		}
	}
}

// New creates a store-backed provider for the given bundle id and installed
// version. Both are required and immutable after construction.
func New(bundleID, installedVersion string, opts ...Option) (*Provider, error) {
	p := &Provider{
		bundleID:         bundleID,
		installedVersion: installedVersion,
		timeout:          DefaultTimeout,
		client: &lookupClient{
			httpClient: &http.Client{},
			baseURL:    DefaultBaseURL,
			retryDelay: DefaultRetryDelay,
			logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	q := p.query()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// query snapshots the provider configuration into a normalized per-call
// Query.
func (p *Provider) query() Query {
	q := Query{
		BundleID:         p.bundleID,
		InstalledVersion: p.installedVersion,
		Country:          p.Country(),
		Timeout:          p.timeout,
		RetryCount:       p.retryCount,
	}
	q.Normalize()
	return q
}

// BundleID returns the bundle identifier the provider was built for.
func (p *Provider) BundleID() string {
	return p.bundleID
}

// InstalledVersion returns the installed version the provider compares
// against.
func (p *Provider) InstalledVersion() string {
	return p.installedVersion
}

// Country returns the normalized storefront code, empty when unset.
func (p *Provider) Country() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.country
}

// SetCountry changes the storefront for subsequent lookups.
func (p *Provider) SetCountry(country string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.country = NormalizeCountry(country)
}

// AppID returns the last learned store identifier, empty until a lookup has
// resolved one.
func (p *Provider) AppID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.appID
}

// SetAppID overrides the known store identifier.
func (p *Provider) SetAppID(appID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.appID = appID
}

// CheckInfoDetailed runs one lookup and returns the full envelope or the
// classified error. A successful lookup that resolved a store identifier
// refreshes the cached app id.
func (p *Provider) CheckInfoDetailed(ctx context.Context) (*updeto.UpdateInfo, error) {
	info, err := p.client.lookup(ctx, p.query())
	if err != nil {
		return nil, err
	}
	if info.AppID != "" {
		p.SetAppID(info.AppID)
	}
	return info, nil
}

// CheckInfo is CheckInfoDetailed with errors collapsed into a NoResults
// envelope, keeping the simple call path infallible.
func (p *Provider) CheckInfo(ctx context.Context) *updeto.UpdateInfo {
	info, err := p.CheckInfoDetailed(ctx)
	if err != nil {
		return &updeto.UpdateInfo{
			Result:           updeto.NoResults,
			InstalledVersion: p.installedVersion,
			BundleID:         p.bundleID,
			Country:          p.Country(),
		}
	}
	return info
}

// CheckStatusDetailed projects the detailed check down to its result.
func (p *Provider) CheckStatusDetailed(ctx context.Context) (updeto.LookupResult, error) {
	info, err := p.CheckInfoDetailed(ctx)
	if err != nil {
		return updeto.NoResults, err
	}
	return info.Result, nil
}

// CheckStatus is the base-tier check: status only, errors collapsed into
// NoResults.
func (p *Provider) CheckStatus(ctx context.Context) updeto.LookupResult {
	result, _ := p.CheckStatusDetailed(ctx)
	return result
}
