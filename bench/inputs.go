package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions lists the input file extensions, lower case.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".webp"}

func isSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// EnumerateInputs returns the supported image files in dir, sorted by name.
// A missing directory or one without images is a configuration error.
func EnumerateInputs(dir string) ([]string, error) {
	fs, err := os.Stat(dir)
	if err != nil || !fs.IsDir() {
		return nil, &ConfigError{Field: "input", Msg: fmt.Sprintf("directory does not exist: %s", dir)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ConfigError{Field: "input", Msg: fmt.Sprintf("unable to read dir: %v", err)}
	}

	var files []string
	for _, e := range entries {
		if !isSupported(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		// Stat follows symlinks.
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, &ConfigError{
			Field: "input",
			Msg: fmt.Sprintf("no supported image files found in %s (supported: %s)",
				dir, strings.Join(SupportedExtensions, ", ")),
		}
	}
	return files, nil
}
