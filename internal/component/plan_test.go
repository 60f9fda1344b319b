package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/crcf-labs/crcf/internal/errors"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name string
		spec string
		cfg  Config
		want []string
	}{
		{
			name: "defaults",
			spec: "Button",
			want: []string{"index.js", "Button.js", "Button.test.js", "Button.css"},
		},
		{
			name: "typescript without test",
			spec: "Button",
			cfg:  Config{TypeScript: true, NoTest: true},
			want: []string{"index.tsx", "Button.tsx"},
		},
		{
			name: "native never gets a style file",
			spec: "Button",
			cfg:  Config{Native: true, Style: StyleLess},
			want: []string{"index.js", "Button.js", "Button.test.js"},
		},
		{
			name: "no style",
			spec: "Button",
			cfg:  Config{NoStyle: true},
			want: []string{"index.js", "Button.js", "Button.test.js"},
		},
		{
			name: "less",
			spec: "Button",
			cfg:  Config{Style: StyleLess},
			want: []string{"index.js", "Button.js", "Button.test.js", "Button.less"},
		},
		{
			name: "sass writes scss",
			spec: "Button",
			cfg:  Config{Style: StyleSass},
			want: []string{"index.js", "Button.js", "Button.test.js", "Button.scss"},
		},
		{
			name: "uppercase leaves index alone",
			spec: "button",
			cfg:  Config{Uppercase: true, TypeScript: true},
			want: []string{"index.tsx", "Button.tsx", "Button.test.tsx", "Button.css"},
		},
		{
			name: "lowercase name kept without uppercase",
			spec: "button",
			want: []string{"index.js", "button.js", "button.test.js", "button.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := NewSpec(tt.spec, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Names(Plan(spec)))
		})
	}
}

func TestPlanFileCount(t *testing.T) {
	for _, cfg := range allConfigs() {
		spec, err := NewSpec("Card", cfg)
		require.NoError(t, err)

		files := Plan(spec)
		want := 2
		if !cfg.NoTest {
			want++
		}
		if !cfg.NoStyle && !cfg.Native {
			want++
		}
		assert.Len(t, files, want, "config %+v", cfg)

		assert.Equal(t, RoleIndex, files[0].Role)
		assert.Equal(t, RoleSource, files[1].Role)
		for _, f := range files {
			if cfg.Native {
				assert.NotEqual(t, RoleStyle, f.Role, "native config %+v planned a style file", cfg)
			}
			if f.Role == RoleIndex {
				assert.Equal(t, "index."+cfg.SourceExt(), f.Name)
			}
		}
	}
}

func TestNewSpec(t *testing.T) {
	spec, err := NewSpec("src/components/Button", Config{})
	require.NoError(t, err)
	assert.Equal(t, "Button", spec.Name)
	assert.Equal(t, "src/components/Button", spec.Dir)

	spec, err = NewSpec(`src\Button`, Config{})
	require.NoError(t, err)
	assert.Equal(t, "Button", spec.Name)
	assert.Equal(t, "src/Button", spec.Dir)
}

func TestNewSpecRejects(t *testing.T) {
	for _, arg := range []string{"", "index", "components/index", "components/"} {
		t.Run(arg, func(t *testing.T) {
			_, err := NewSpec(arg, Config{})
			assert.ErrorIs(t, err, cerrors.ErrValidation)
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
		ext  string
	}{
		{"", StyleCSS, "css"},
		{"css", StyleCSS, "css"},
		{"less", StyleLess, "less"},
		{"sass", StyleSass, "scss"},
		{"SCSS", StyleSass, "scss"},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.ext, got.Ext())
	}

	_, err := ParseStyle("stylus")
	assert.ErrorIs(t, err, cerrors.ErrValidation)
}

// allConfigs enumerates every combination of the boolean options.
func allConfigs() []Config {
	var out []Config
	for mask := 0; mask < 1<<6; mask++ {
		out = append(out, Config{
			TypeScript: mask&1 != 0,
			Native:     mask&2 != 0,
			NoTest:     mask&4 != 0,
			NoStyle:    mask&8 != 0,
			PropTypes:  mask&16 != 0,
			Uppercase:  mask&32 != 0,
			Style:      StyleCSS,
		})
	}
	return out
}
