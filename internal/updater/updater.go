package updater

import (
	"net/http"
	"time"

	"github.com/crcf-labs/crcf/internal/branding"
)

// Release represents a GitHub release.
type Release struct {
	Version   string    `json:"tag_name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Updater checks for newer releases of the running binary.
type Updater struct {
	currentVersion string
	httpClient     *http.Client
	apiBase        string
	repo           string
	now            func() time.Time
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) {
		u.httpClient = c
	}
}

// WithAPIBase points release lookups at another GitHub API root.
func WithAPIBase(base string) Option {
	return func(u *Updater) {
		u.apiBase = base
	}
}

// WithClock overrides the time source used for cache timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		u.now = now
	}
}

// New creates an Updater with the given current version and options.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		apiBase:        githubAPIBase,
		repo:           branding.GitHubRepo(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CurrentVersion returns the version this updater was created with.
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}

// Released reports whether the running binary carries a semver version.
// Development builds ("dev") never check for updates.
func (u *Updater) Released() bool {
	_, err := parseSemver(u.currentVersion)
	return err == nil
}
