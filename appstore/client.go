package appstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	updeto "github.com/manasv/updeto-go"
	retry "github.com/sethvargo/go-retry"
)

const lookupPath = "/lookup"

// lookupClient issues the HTTP lookup request, classifies failures into the
// updeto error taxonomy and applies the retry policy. It is the one canonical
// operation every provider call shape derives from.
type lookupClient struct {
	httpClient *http.Client
	baseURL    string
	retryDelay time.Duration
	logger     *slog.Logger
}

// lookup runs the query with up to 1+RetryCount sequential attempts. Only
// retryable failures (transport errors, 5xx statuses) trigger another
// attempt; exhausting the budget surfaces the last observed error. Context
// cancellation stops the loop between attempts and aborts the in-flight
// request.
func (c *lookupClient) lookup(ctx context.Context, q Query) (*updeto.UpdateInfo, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var info *updeto.UpdateInfo
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(q.RetryCount), retry.NewConstant(c.retryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		result, err := c.attempt(ctx, q)
		if err != nil {
			c.logger.Debug("lookup attempt failed",
				"bundle_id", q.BundleID,
				"attempt", attempt,
				"retryable", updeto.IsRetryable(err),
				"error", err)
			if updeto.IsRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		info = result
		return nil
	})
	if err != nil {
		var lookupErr *updeto.Error
		if errors.As(err, &lookupErr) {
			return nil, lookupErr
		}
		// Context cancellation between attempts surfaces as a bare ctx
		// error; classify it as transport-level like an aborted request.
		return nil, updeto.NewNetworkError(err)
	}
	return info, nil
}

// attempt performs exactly one request/response cycle.
func (c *lookupClient) attempt(ctx context.Context, q Query) (*updeto.UpdateInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, q.Timeout)
	defer cancel()

	endpoint, err := url.Parse(c.baseURL + lookupPath)
	if err != nil {
		return nil, updeto.NewNetworkError(err)
	}
	params := url.Values{}
	params.Set("bundleId", q.BundleID)
	if q.Country != "" {
		params.Set("country", q.Country)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, updeto.NewNetworkError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, updeto.NewNetworkError(err)
	}
	defer resp.Body.Close()

	// A response without a distinguishable HTTP status gets the sentinel
	// code; it is terminal under the retry policy.
	if resp.StatusCode < 100 {
		return nil, updeto.NewBadServerResponseError(updeto.StatusUnknown)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, updeto.NewBadServerResponseError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, updeto.NewNetworkError(err)
	}

	var decoded lookupResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, updeto.NewDecodingError(err)
	}

	return buildInfo(q, &decoded), nil
}

// buildInfo turns a decoded lookup response into the domain envelope. An
// empty result sequence is a success with NoResults, never an error.
func buildInfo(q Query, resp *lookupResponse) *updeto.UpdateInfo {
	info := &updeto.UpdateInfo{
		Result:           updeto.NoResults,
		InstalledVersion: q.InstalledVersion,
		BundleID:         q.BundleID,
		Country:          q.Country,
	}
	if len(resp.Results) == 0 {
		return info
	}

	first := resp.Results[0]
	switch cmp := updeto.CompareVersions(first.Version, q.InstalledVersion); {
	case cmp > 0:
		info.Result = updeto.Outdated
	case cmp < 0:
		info.Result = updeto.DevelopmentOrBeta
	default:
		info.Result = updeto.Updated
	}
	info.StoreVersion = first.Version
	info.AppID = strconv.FormatInt(first.TrackID, 10)
	info.URL = DeepLinkURL(info.AppID)
	return info
}

// DeepLinkURL builds the store detail page link for a known app id. An empty
// id yields an empty URL: a deep link exists exactly when the identifier is
// known.
func DeepLinkURL(appID string) string {
	if appID == "" {
		return ""
	}
	return "itms-apps://apple.com/app/id" + appID
}
