package component

import "github.com/crcf-labs/crcf/internal/naming"

// Plan returns the files spec's component needs, index first. The index file
// is always "index.<ext>"; the Uppercase option capitalizes every other name.
func Plan(spec Spec) []PlannedFile {
	cfg := spec.Config
	ext := cfg.SourceExt()

	files := []PlannedFile{
		{Name: "index." + ext, Role: RoleIndex},
		{Name: spec.Name + "." + ext, Role: RoleSource},
	}
	if !cfg.NoTest {
		files = append(files, PlannedFile{Name: spec.Name + ".test." + ext, Role: RoleTest})
	}
	if cfg.HasStyle() {
		files = append(files, PlannedFile{Name: spec.Name + "." + cfg.Style.Ext(), Role: RoleStyle})
	}

	if cfg.Uppercase {
		for i := range files {
			if files[i].Role != RoleIndex {
				files[i].Name = naming.Capitalize(files[i].Name)
			}
		}
	}
	return files
}

// Names returns the filenames of files in order.
func Names(files []PlannedFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}
