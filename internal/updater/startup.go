package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/crcf-labs/crcf/internal/branding"
	"github.com/crcf-labs/crcf/internal/output"
)

// refreshTimeout bounds the background release lookup.
const refreshTimeout = 5 * time.Second

// CheckAndPrintBanner prints an update banner from the version cache if a
// newer version is known. It never blocks: if the cache is stale, a
// background goroutine refreshes it for the next invocation.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	if !u.Released() {
		return
	}

	cache := u.cached(configDir)
	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if !u.fresh(cache) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()
			if err := u.Refresh(ctx, configDir); err != nil {
				output.Debug("version check failed", "err", err)
			}
		}()
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\n%s %s -> %s\n",
		output.StyleSummary.Render("Update available:"),
		output.StyleDim.Render(current),
		output.StyleNoun.Render(latest))
	fmt.Fprintf(w, "    Run `go install %s@latest` to upgrade\n\n", branding.GoModule())
}

// Refresh fetches the latest version and rewrites the cache file.
func (u *Updater) Refresh(ctx context.Context, configDir string) error {
	release, err := u.CheckLatestVersion(ctx)
	if err != nil {
		return err
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		return err
	}

	return SaveCache(configDir, &VersionCache{
		Repo:            u.repo,
		CurrentVersion:  u.currentVersion,
		LatestVersion:   release.Version,
		ReleaseURL:      release.HTMLURL,
		CheckedAt:       u.now(),
		UpdateAvailable: available,
	})
}
