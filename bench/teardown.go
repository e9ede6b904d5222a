package bench

import (
	"os"
	"path/filepath"
)

// Teardown removes the benchmark outputs unless keep is set: every regular
// file in dir, then dir itself. Anything left behind is reported as a
// *CleanupWarning; a missing directory is not an error.
func Teardown(dir string, keep bool) error {
	if keep {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &CleanupWarning{Path: dir, Err: err}
	}

	var warning error
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.Remove(path); err != nil && warning == nil {
			warning = &CleanupWarning{Path: path, Err: err}
		}
	}

	if err := os.Remove(dir); err != nil && warning == nil {
		warning = &CleanupWarning{Path: dir, Err: err}
	}
	return warning
}
