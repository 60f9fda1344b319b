// Package barrel builds an index file that re-exports every component folder
// of a directory.
package barrel

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/sourcegraph/conc/iter"

	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/jsfmt"
	"github.com/crcf-labs/crcf/internal/naming"
	"github.com/crcf-labs/crcf/internal/output"
)

// IndexFile is the name of the generated barrel file.
const IndexFile = "index.js"

// Aggregator writes barrel index files.
type Aggregator struct {
	fs billy.Filesystem
}

// New creates an Aggregator working on fs.
func New(fs billy.Filesystem) *Aggregator {
	return &Aggregator{fs: fs}
}

// Aggregate writes dir/index.js re-exporting each component folder of dir
// and returns the written path. Only entries that stat as directories and
// whose name starts with a letter are exported, in listing order.
func (a *Aggregator) Aggregate(ctx context.Context, dir string) (string, error) {
	info, err := a.fs.Stat(dir)
	if os.IsNotExist(err) {
		return "", cerrors.NewNotFoundError("directory does not exist", dir, "check the path passed to --createindex")
	}
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", cerrors.NewValidationError("not a directory", dir, "--createindex expects a folder of components")
	}

	entries, err := a.Entries(ctx, dir)
	if err != nil {
		return "", err
	}

	content, err := Render(entries)
	if err != nil {
		return "", err
	}

	target := a.fs.Join(dir, IndexFile)
	if _, err := a.fs.Stat(target); err == nil {
		return "", cerrors.NewAlreadyExistsError(target)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", target, err)
	}

	if err := util.WriteFile(a.fs, target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}

	output.Debug("wrote barrel index", "path", target, "entries", len(entries))
	return target, nil
}

// Entries lists the component folders of dir in listing order.
func (a *Aggregator) Entries(ctx context.Context, dir string) ([]string, error) {
	listing, err := a.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	names := make([]string, len(listing))
	for i, fi := range listing {
		names[i] = fi.Name()
	}

	// Stat each entry rather than trusting the listing so symlinked
	// component folders are followed.
	isDir, err := iter.MapErr(names, func(name *string) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fi, err := a.fs.Stat(a.fs.Join(dir, *name))
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, fmt.Errorf("checking %s: %w", *name, err)
		}
		return fi.IsDir(), nil
	})
	if err != nil {
		return nil, err
	}

	var out []string
	for i, name := range names {
		if isDir[i] && naming.StartsWithLetter(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// Render returns the formatted barrel source for entries. Folders whose
// identifiers clash get a numeric suffix in listing order: date-picker and
// date_picker export date_picker and date_picker2.
func Render(entries []string) (string, error) {
	used := make(map[string]bool, len(entries))
	var b strings.Builder
	for _, name := range entries {
		id := uniqueIdentifier(naming.Identifier(name), used)
		fmt.Fprintf(&b, "export { default as %s } from './%s';\n", id, name)
	}
	return jsfmt.Source(b.String())
}

func uniqueIdentifier(base string, used map[string]bool) string {
	id := base
	for n := 2; used[id]; n++ {
		id = base + strconv.Itoa(n)
	}
	used[id] = true
	return id
}
