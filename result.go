package updeto

// LookupResult classifies the relationship between the installed version and
// the version published on the store.
type LookupResult int

const (
	// NoResults means the lookup returned no matching record, or - on the
	// simplified call paths - that an error was collapsed into "nothing to
	// report".
	NoResults LookupResult = iota

	// Updated means the store version equals the installed version.
	Updated

	// Outdated means the store publishes a newer version than the one
	// installed.
	Outdated

	// DevelopmentOrBeta means the installed version is ahead of the store
	// version, which typically indicates a development or beta build.
	DevelopmentOrBeta
)

func (r LookupResult) String() string {
	switch r {
	case Updated:
		return "updated"
	case Outdated:
		return "outdated"
	case DevelopmentOrBeta:
		return "development_or_beta"
	default:
		return "no_results"
	}
}

// MarshalText implements encoding.TextMarshaler so results serialize as their
// symbolic name rather than a bare integer.
func (r LookupResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UpdateInfo is the rich result envelope of a version check. Optional fields
// are empty strings when unknown: StoreVersion and AppID are empty when the
// lookup matched nothing, and URL is set exactly when AppID is non-empty.
type UpdateInfo struct {
	Result           LookupResult `json:"result"`
	InstalledVersion string       `json:"installed_version,omitempty"`
	StoreVersion     string       `json:"store_version,omitempty"`
	AppID            string       `json:"app_id,omitempty"`
	URL              string       `json:"url,omitempty"`
	BundleID         string       `json:"bundle_id,omitempty"`
	Country          string       `json:"country,omitempty"`
}
