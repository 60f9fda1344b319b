package updater

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// A leading "v" is accepted on either side.
func CompareVersions(current, latest string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv), nil
}

// IsUpdateAvailable returns true if latest is newer than current. A
// prerelease latest is only offered to users already on a prerelease.
func IsUpdateAvailable(current, latest string) (bool, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	if lv.Prerelease() != "" && cv.Prerelease() == "" {
		return false, nil
	}
	return cv.LessThan(lv), nil
}

// parseSemver parses a version string, tolerating a leading "v".
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(version)
}
