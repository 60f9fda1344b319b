package barrel

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/crcf-labs/crcf/internal/errors"
)

func setupComponents(t *testing.T, dirs []string, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("components", 0o755))
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(fs.Join("components", d), 0o755))
	}
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, fs.Join("components", name), []byte(content), 0o644))
	}
	return fs
}

func readFile(t *testing.T, fs billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestAggregateFiltersEntries(t *testing.T) {
	fs := setupComponents(t, []string{"Alpha", ".hidden", "2Numeric", "beta"}, map[string]string{
		"README.md": "not a component",
	})

	path, err := New(fs).Aggregate(context.Background(), "components")
	require.NoError(t, err)
	assert.Equal(t, fs.Join("components", "index.js"), path)

	want := "export { default as Alpha } from \"./Alpha\";\n" +
		"export { default as beta } from \"./beta\";\n"
	assert.Equal(t, want, readFile(t, fs, path))
}

func TestEntriesKeepListingOrder(t *testing.T) {
	fs := setupComponents(t, []string{"Card", "Button", "Avatar", "_internal"}, nil)

	entries, err := New(fs).Entries(context.Background(), "components")
	require.NoError(t, err)
	assert.Equal(t, []string{"Avatar", "Button", "Card"}, entries)
}

func TestAggregateExistingIndex(t *testing.T) {
	fs := setupComponents(t, []string{"Alpha"}, map[string]string{
		"index.js": "// hand written\n",
	})

	_, err := New(fs).Aggregate(context.Background(), "components")
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrAlreadyExists)
	assert.Equal(t, "// hand written\n", readFile(t, fs, "components/index.js"))
}

func TestAggregateMissingDirectory(t *testing.T) {
	_, err := New(memfs.New()).Aggregate(context.Background(), "nope")
	assert.ErrorIs(t, err, cerrors.ErrNotFound)
}

func TestAggregateNotADirectory(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "file.js", []byte("x"), 0o644))

	_, err := New(fs).Aggregate(context.Background(), "file.js")
	assert.ErrorIs(t, err, cerrors.ErrValidation)
}

func TestAggregateDashedFolder(t *testing.T) {
	fs := setupComponents(t, []string{"date-picker"}, nil)

	path, err := New(fs).Aggregate(context.Background(), "components")
	require.NoError(t, err)
	assert.Equal(t, "export { default as date_picker } from \"./date-picker\";\n", readFile(t, fs, path))
}

func TestRenderIsFormatted(t *testing.T) {
	out, err := Render([]string{"Alpha", "beta"})
	require.NoError(t, err)
	assert.Contains(t, out, `from "./Alpha";`)

	empty, err := Render(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAggregateClashingIdentifiers(t *testing.T) {
	fs := setupComponents(t, []string{"date-picker", "date_picker", "Alpha"}, nil)

	path, err := New(fs).Aggregate(context.Background(), "components")
	require.NoError(t, err)

	want := "export { default as Alpha } from \"./Alpha\";\n" +
		"export { default as date_picker } from \"./date-picker\";\n" +
		"export { default as date_picker2 } from \"./date_picker\";\n"
	assert.Equal(t, want, readFile(t, fs, path))
}

func TestRenderSuffixSkipsTakenNames(t *testing.T) {
	out, err := Render([]string{"a-b", "a_b2", "a_b"})
	require.NoError(t, err)

	want := "export { default as a_b } from \"./a-b\";\n" +
		"export { default as a_b2 } from \"./a_b2\";\n" +
		"export { default as a_b3 } from \"./a_b\";\n"
	assert.Equal(t, want, out)
}
