package component

import (
	"path/filepath"
	"strings"

	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/naming"
)

// ReservedName cannot be used as a component name: its files would collide
// with the component's own index file.
const ReservedName = "index"

// Style selects the extension of a component's style file.
type Style string

const (
	StyleCSS  Style = "css"
	StyleLess Style = "less"
	StyleSass Style = "sass"
)

// Ext returns the file extension written for the style.
func (s Style) Ext() string {
	switch s {
	case StyleLess:
		return "less"
	case StyleSass:
		return "scss"
	default:
		return "css"
	}
}

// ParseStyle maps a style name to a Style. "scss" is accepted as an alias
// for sass; the empty string means css.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "css":
		return StyleCSS, nil
	case "less":
		return StyleLess, nil
	case "sass", "scss":
		return StyleSass, nil
	default:
		return "", cerrors.NewValidationError(
			"unknown style "+name, "", "use one of css, less, sass")
	}
}

// Config holds the options shared by every component of one invocation.
type Config struct {
	TypeScript bool
	Native     bool
	NoTest     bool
	NoStyle    bool
	Style      Style
	PropTypes  bool
	Uppercase  bool
}

// SourceExt returns the extension of source, test and index files.
func (c Config) SourceExt() string {
	if c.TypeScript {
		return "tsx"
	}
	return "js"
}

// HasStyle reports whether components get a style file.
func (c Config) HasStyle() bool {
	return !c.NoStyle && !c.Native
}

// Spec describes a single component to create.
type Spec struct {
	// Name is the bare component name (no path prefix).
	Name string

	// Dir is the directory to create, relative to the materializer root.
	Dir string

	Config Config
}

// NewSpec builds a Spec from one raw name argument. The argument may carry a
// path prefix ("src/components/Button"); the component is named after its
// last segment and created at the full path.
func NewSpec(arg string, cfg Config) (Spec, error) {
	name := naming.BareName(arg)
	if name == "" {
		return Spec{}, cerrors.NewValidationError(
			"component name is empty", arg, "pass a name such as Button")
	}
	if name == ReservedName {
		return Spec{}, cerrors.NewValidationError(
			`"index" is a reserved name`, arg, "pick another component name")
	}

	dir := filepath.Clean(filepath.FromSlash(strings.ReplaceAll(arg, `\`, "/")))
	return Spec{Name: name, Dir: dir, Config: cfg}, nil
}

// Role identifies what a planned file is for.
type Role int

const (
	RoleIndex Role = iota
	RoleSource
	RoleTest
	RoleStyle
)

func (r Role) String() string {
	switch r {
	case RoleIndex:
		return "index"
	case RoleSource:
		return "component"
	case RoleTest:
		return "test"
	case RoleStyle:
		return "style"
	default:
		return "unknown"
	}
}

// PlannedFile is one file a component needs.
type PlannedFile struct {
	Name string
	Role Role
}

// RenderedFile is a planned file with its content.
type RenderedFile struct {
	Name    string
	Content string
}
