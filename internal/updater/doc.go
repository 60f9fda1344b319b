// Package updater implements the new-version notice. It checks GitHub
// Releases for the latest tag at most once a day, caches the answer under the
// user config directory and prints a banner when a newer release exists.
package updater
