package header

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"spdxer/internal/charset"
)

// renameFile is a package-level variable so tests can force rename failures.
var renameFile = os.Rename

// SetRenameForTests overrides the rename step of Save during tests.
func SetRenameForTests(fn func(oldpath, newpath string) error) func() {
	previous := renameFile
	renameFile = fn
	return func() {
		renameFile = previous
	}
}

// Processor loads a source file once, partitions it into shebang, header, and
// body, supports repeated in-memory header edits, and writes the result back
// atomically. The body is never touched by header operations.
type Processor struct {
	path     string
	marker   string
	enc      charset.Encoding
	shebang  string
	header   []string
	body     []string
	loaded   bool
	modified bool
}

// NewProcessor creates a processor for path. Nothing is read until Load.
func NewProcessor(path string) *Processor {
	return &Processor{
		path:   path,
		marker: Marker(path),
		enc:    charset.UTF8,
	}
}

// Path returns the file path this processor operates on.
func (p *Processor) Path() string { return p.path }

// Marker returns the comment marker used for this file's extension.
func (p *Processor) Marker() string { return p.marker }

// Load reads and partitions the file. It is a no-op after the first
// successful call, so the file is read from disk exactly once.
func (p *Processor) Load() error {
	if p.loaded {
		return nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", p.path, err)
	}
	enc, err := charset.Detect(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", p.path, err)
	}
	content, err := enc.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", p.path, err)
	}

	p.enc = enc
	p.shebang, p.header, p.body = partition(SplitLines(content), p.marker)
	p.loaded = true
	return nil
}

// HasHeader reports whether the file carries a header, loading it if needed.
func (p *Processor) HasHeader() (bool, error) {
	if err := p.Load(); err != nil {
		return false, err
	}
	return len(p.header) > 0, nil
}

// AddHeader replaces the header with the line-split form of text. The caller
// is responsible for terminating text appropriately, typically with a blank
// line separating it from the body.
func (p *Processor) AddHeader(text string) error {
	if err := p.Load(); err != nil {
		return err
	}
	p.header = SplitLines(text)
	p.modified = true
	return nil
}

// RemoveHeader drops the header, marking the processor modified only when
// something was actually removed.
func (p *Processor) RemoveHeader() error {
	if err := p.Load(); err != nil {
		return err
	}
	if len(p.header) == 0 {
		return nil
	}
	p.header = nil
	p.modified = true
	return nil
}

// Content returns the current in-memory file content without saving.
func (p *Processor) Content() (string, error) {
	if err := p.Load(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(p.shebang)
	for _, line := range p.header {
		b.WriteString(line)
	}
	for _, line := range p.body {
		b.WriteString(line)
	}
	return b.String(), nil
}

// Modified reports whether an unsaved mutation is pending.
func (p *Processor) Modified() bool { return p.modified }

// Save writes the current content back to the file through a temporary
// sibling file and an atomic rename, preserving the original permission bits.
// It is a no-op when the file was never loaded, or when nothing changed and
// force is false. On failure the temporary file is removed and the target is
// left exactly as it was; the processor stays modified.
func (p *Processor) Save(force bool) error {
	if !p.loaded {
		return nil
	}
	if !p.modified && !force {
		return nil
	}

	content, err := p.Content()
	if err != nil {
		return err
	}
	data, err := p.enc.Encode(content)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.path, err)
	}

	dir := filepath.Dir(p.path)
	base := filepath.Base(p.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()[:8]))

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", p.path, err)
	}

	fail := func(err error) error {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if _, err := f.Write(data); err != nil {
		return fail(fmt.Errorf("write temp file for %s: %w", p.path, err))
	}
	if info, statErr := os.Stat(p.path); statErr == nil {
		if err := f.Chmod(info.Mode().Perm()); err != nil {
			return fail(fmt.Errorf("copy permissions for %s: %w", p.path, err))
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file for %s: %w", p.path, err)
	}

	if err := renameFile(tmpPath, p.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", p.path, err)
	}

	p.modified = false
	return nil
}
