package bench

import "fmt"

// ConfigError is a fatal setup problem detected before any image is processed.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// ImageError reports a failure scoped to a single source image. The run goes
// on with the next image.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }

// CleanupWarning reports output files or directories that could not be removed.
type CleanupWarning struct {
	Path string
	Err  error
}

func (e *CleanupWarning) Error() string {
	return fmt.Sprintf("could not clean up %s: %v", e.Path, e.Err)
}

func (e *CleanupWarning) Unwrap() error { return e.Err }
