package component

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/crcf-labs/crcf/internal/jsfmt"
	"github.com/crcf-labs/crcf/internal/naming"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

const (
	testTemplate  = "test.tmpl"
	indexTemplate = "index.tmpl"
)

// flavor is the template family picked for a component source file.
type flavor int

const (
	flavorBare flavor = iota
	flavorPropTyped
	flavorTyped
)

// variant keys the component template table.
type variant struct {
	flavor flavor
	native bool
}

var componentTemplates = map[variant]string{
	{flavorBare, false}:      "component_web.js.tmpl",
	{flavorPropTyped, false}: "component_web_proptypes.js.tmpl",
	{flavorTyped, false}:     "component_web.tsx.tmpl",
	{flavorBare, true}:       "component_native.js.tmpl",
	{flavorPropTyped, true}:  "component_native_proptypes.js.tmpl",
	{flavorTyped, true}:      "component_native.tsx.tmpl",
}

// resolveVariant applies the precedence TypeScript > PropTypes > bare.
func resolveVariant(cfg Config) variant {
	v := variant{flavor: flavorBare, native: cfg.Native}
	switch {
	case cfg.TypeScript:
		v.flavor = flavorTyped
	case cfg.PropTypes:
		v.flavor = flavorPropTyped
	}
	return v
}

// TemplateData is what the file templates see.
type TemplateData struct {
	// Component is the identifier used in code, always capitalized.
	Component string

	// FileBase is the source filename without extension, as planned.
	FileBase string

	// StyleFile is the planned style filename, empty when there is none.
	StyleFile string
}

// Formatter pretty-prints JavaScript.
type Formatter func(src string) (string, error)

// Renderer produces file contents for planned files.
type Renderer struct {
	format Formatter
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithFormatter replaces the JavaScript formatter.
func WithFormatter(f Formatter) RendererOption {
	return func(r *Renderer) {
		r.format = f
	}
}

// NewRenderer creates a Renderer that formats with jsfmt unless overridden.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{format: jsfmt.Source}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the complete content of file for spec's component.
// TypeScript output is returned exactly as the template produced it; every
// other non-empty output goes through the formatter.
func (r *Renderer) Render(spec Spec, file PlannedFile, plan []PlannedFile) (RenderedFile, error) {
	if file.Role == RoleStyle {
		return RenderedFile{Name: file.Name}, nil
	}

	name, err := templateFor(spec.Config, file.Role)
	if err != nil {
		return RenderedFile{}, err
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, newTemplateData(spec, plan)); err != nil {
		return RenderedFile{}, fmt.Errorf("executing template %s: %w", name, err)
	}

	content := buf.String()
	if !spec.Config.TypeScript {
		content, err = r.format(content)
		if err != nil {
			return RenderedFile{}, fmt.Errorf("formatting %s: %w", file.Name, err)
		}
	}

	return RenderedFile{Name: file.Name, Content: content}, nil
}

// RenderAll renders every file of plan, in order.
func (r *Renderer) RenderAll(spec Spec, plan []PlannedFile) ([]RenderedFile, error) {
	out := make([]RenderedFile, 0, len(plan))
	for _, f := range plan {
		rf, err := r.Render(spec, f, plan)
		if err != nil {
			return nil, err
		}
		out = append(out, rf)
	}
	return out, nil
}

func templateFor(cfg Config, role Role) (string, error) {
	switch role {
	case RoleSource:
		return componentTemplates[resolveVariant(cfg)], nil
	case RoleTest:
		return testTemplate, nil
	case RoleIndex:
		return indexTemplate, nil
	default:
		return "", fmt.Errorf("no template for %s files", role)
	}
}

func newTemplateData(spec Spec, plan []PlannedFile) TemplateData {
	data := TemplateData{
		Component: naming.Identifier(naming.Capitalize(spec.Name)),
		FileBase:  spec.Name,
	}
	for _, f := range plan {
		switch f.Role {
		case RoleSource:
			data.FileBase = strings.TrimSuffix(f.Name, "."+spec.Config.SourceExt())
		case RoleStyle:
			data.StyleFile = f.Name
		}
	}
	return data
}
