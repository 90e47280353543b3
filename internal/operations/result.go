package operations

import "fmt"

// FileError records a failure confined to a single file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result aggregates the outcome of a batch operation. Modified lists files
// that were (or in dry-run mode, would be) rewritten; Skipped lists files the
// fast probe ruled out.
type Result struct {
	Modified []string
	Skipped  []string
	Errors   []FileError
	DryRun   bool
}

// OK reports whether every visited file was handled without error.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}
