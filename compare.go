package updeto

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares the store version against the installed version.
//
// Returns:
//
//	-1 if store < installed (installed build is ahead)
//	 0 if store == installed
//	+1 if store > installed (an update is available)
//
// When both strings parse as semantic versions they are compared with semver
// precedence, which pads missing components with zero ("1.2" == "1.2.0") and
// orders pre-release builds below their release ("1.2.0-beta" < "1.2.0").
//
// Store versions are not required to be semver: four-component builds like
// "1.2.3.4" are common on the App Store. Anything semver rejects falls back
// to a component-wise comparison of the dot-separated sequences, with the
// shorter sequence right-padded with "0". Component pairs compare numerically
// when both sides are integers ("1.9" < "1.10"), lexicographically otherwise.
// Pure and deterministic for fixed inputs.
func CompareVersions(storeVersion, installedVersion string) int {
	sv, serr := semver.NewVersion(storeVersion)
	iv, ierr := semver.NewVersion(installedVersion)
	if serr == nil && ierr == nil {
		return sv.Compare(iv)
	}
	return compareComponents(storeVersion, installedVersion)
}

// compareComponents performs the zero-padded component-wise comparison used
// for version strings that are not valid semver.
func compareComponents(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for len(as) < len(bs) {
		as = append(as, "0")
	}
	for len(bs) < len(as) {
		bs = append(bs, "0")
	}

	for i := range as {
		if c := compareComponent(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareComponent(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		switch {
		case an > bn:
			return 1
		case an < bn:
			return -1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
