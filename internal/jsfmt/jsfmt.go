// Package jsfmt pretty-prints generated JavaScript so scaffolded files do not
// depend on how templates are indented. Output is deterministic: formatting
// already formatted source returns it unchanged.
package jsfmt

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Source formats JavaScript (JSX allowed) and returns the printed result.
// JSX is preserved, not compiled.
func Source(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	result := api.Transform(src, api.TransformOptions{
		Loader:        api.LoaderJSX,
		JSX:           api.JSXPreserve,
		Charset:       api.CharsetUTF8,
		LegalComments: api.LegalCommentsInline,
		LogLevel:      api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", syntaxError(result.Errors[0])
	}

	return string(result.Code), nil
}

func syntaxError(msg api.Message) error {
	if msg.Location == nil {
		return fmt.Errorf("formatting javascript: %s", msg.Text)
	}
	return fmt.Errorf("formatting javascript: %d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text)
}
