package scaffold

import (
	"context"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/sync/errgroup"

	"github.com/crcf-labs/crcf/internal/component"
	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/output"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Result holds the outcome of a successful materialization.
type Result struct {
	// Component is the bare component name.
	Component string

	// OutputDir is the created directory.
	OutputDir string

	// Files lists the written filenames in planned order, index first.
	Files []string
}

// Materializer creates component directories on a filesystem.
type Materializer struct {
	fs       billy.Filesystem
	renderer *component.Renderer

	mu      sync.Mutex
	claimed map[string]struct{}
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithRenderer sets the renderer used for file contents.
func WithRenderer(r *component.Renderer) Option {
	return func(m *Materializer) {
		m.renderer = r
	}
}

// New creates a Materializer writing to fs.
func New(fs billy.Filesystem, opts ...Option) *Materializer {
	m := &Materializer{fs: fs, claimed: make(map[string]struct{})}
	for _, opt := range opts {
		opt(m)
	}
	if m.renderer == nil {
		m.renderer = component.NewRenderer()
	}
	return m
}

// Materialize creates spec.Dir and writes the component's files into it.
// An existing directory fails with ErrDirectoryExists before anything is
// written. A failed write fails the whole component with ErrWriteFailure;
// files already written are left in place.
//
// A directory is claimed before the existence check, so concurrent calls
// for the same directory on one Materializer yield a single success.
func (m *Materializer) Materialize(ctx context.Context, spec component.Spec) (*Result, error) {
	dir := spec.Dir

	if !m.claim(dir) {
		return nil, cerrors.NewDirectoryExistsError(dir)
	}

	if _, err := m.fs.Stat(dir); err == nil {
		return nil, cerrors.NewDirectoryExistsError(dir)
	} else if !os.IsNotExist(err) {
		m.release(dir)
		return nil, cerrors.NewWriteFailure(dir, err)
	}

	plan := component.Plan(spec)
	files, err := m.renderer.RenderAll(spec, plan)
	if err != nil {
		m.release(dir)
		return nil, err
	}

	if err := m.fs.MkdirAll(dir, dirPerm); err != nil {
		m.release(dir)
		return nil, cerrors.NewWriteFailure(dir, err)
	}
	output.Debug("created directory", "dir", dir)

	g, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := m.fs.Join(dir, f.Name)
			if err := util.WriteFile(m.fs, target, []byte(f.Content), filePerm); err != nil {
				return err
			}
			output.Debug("wrote file", "path", target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, cerrors.NewWriteFailure(dir, err)
	}

	return &Result{
		Component: spec.Name,
		OutputDir: dir,
		Files:     component.Names(plan),
	}, nil
}

// claim reserves dir for one Materialize call. It reports false when dir is
// already taken.
func (m *Materializer) claim(dir string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.claimed[dir]; ok {
		return false
	}
	m.claimed[dir] = struct{}{}
	return true
}

// release gives up a claim taken before anything was created.
func (m *Materializer) release(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.claimed, dir)
}
