package appstore

// lookupResponse mirrors the JSON envelope of the iTunes lookup endpoint.
// Lookup by bundle id returns at most one relevant record; only the first
// entry of results is significant.
type lookupResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []lookupRecord `json:"results"`
}

// lookupRecord is the subset of a lookup result the version check needs. The
// wire format sends trackId as a number; the domain model carries it as a
// string (see UpdateInfo.AppID), converted at decode boundary.
type lookupRecord struct {
	Version  string `json:"version"`
	BundleID string `json:"bundleId"`
	TrackID  int64  `json:"trackId"`
}
