package operations

import (
	"log/slog"

	"spdxer/internal/header"
	"spdxer/internal/license"
	"spdxer/internal/logging"
)

// Batch runs header operations over a set of files one at a time. The fast
// probe decides which files to skip before the full processor is engaged;
// a file changed on disk between the probe and the load is processed from
// its state at load time.
type Batch struct {
	Registry *license.Registry
	Info     license.Info
	Logger   *slog.Logger
	DryRun   bool
}

// Add inserts the header for licenseKey into every file that does not
// already carry one. An unknown license fails before any file is touched.
func (b *Batch) Add(files []string, licenseKey string) (*Result, error) {
	entry, err := b.Registry.Lookup(licenseKey)
	if err != nil {
		return nil, err
	}

	result := &Result{DryRun: b.DryRun}
	for _, path := range files {
		if header.Probe(path) {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if b.DryRun {
			b.Logger.Info("would add header", logging.String("file", path))
			result.Modified = append(result.Modified, path)
			continue
		}
		text := license.RenderHeader(licenseKey, entry, b.Info, header.Marker(path))
		if err := b.rewrite(path, func(p *header.Processor) error {
			return p.AddHeader(text)
		}); err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			continue
		}
		b.Logger.Info("added header", logging.String("file", path))
		result.Modified = append(result.Modified, path)
	}
	return result, nil
}

// Change replaces the header in every file that already carries one. Files
// without a header are skipped, matching Add's inverse.
func (b *Batch) Change(files []string, licenseKey string) (*Result, error) {
	entry, err := b.Registry.Lookup(licenseKey)
	if err != nil {
		return nil, err
	}

	result := &Result{DryRun: b.DryRun}
	for _, path := range files {
		if !header.Probe(path) {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if b.DryRun {
			b.Logger.Info("would change header", logging.String("file", path))
			result.Modified = append(result.Modified, path)
			continue
		}
		text := license.RenderHeader(licenseKey, entry, b.Info, header.Marker(path))
		changed := false
		if err := b.rewrite(path, func(p *header.Processor) error {
			has, err := p.HasHeader()
			if err != nil {
				return err
			}
			if !has {
				return nil
			}
			changed = true
			return p.AddHeader(text)
		}); err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			continue
		}
		if !changed {
			b.Logger.Info("no header found", logging.String("file", path))
			result.Skipped = append(result.Skipped, path)
			continue
		}
		b.Logger.Info("changed header", logging.String("file", path))
		result.Modified = append(result.Modified, path)
	}
	return result, nil
}

// Remove strips the header from every file that carries one.
func (b *Batch) Remove(files []string) *Result {
	result := &Result{DryRun: b.DryRun}
	for _, path := range files {
		if !header.Probe(path) {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if b.DryRun {
			b.Logger.Info("would remove header", logging.String("file", path))
			result.Modified = append(result.Modified, path)
			continue
		}
		removed := false
		if err := b.rewrite(path, func(p *header.Processor) error {
			has, err := p.HasHeader()
			if err != nil {
				return err
			}
			if !has {
				return nil
			}
			removed = true
			return p.RemoveHeader()
		}); err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			continue
		}
		if !removed {
			b.Logger.Info("no header found", logging.String("file", path))
			result.Skipped = append(result.Skipped, path)
			continue
		}
		b.Logger.Info("removed header", logging.String("file", path))
		result.Modified = append(result.Modified, path)
	}
	return result
}

// rewrite runs one load-mutate-save cycle on path. A save that has nothing
// to write is a no-op inside the processor.
func (b *Batch) rewrite(path string, mutate func(*header.Processor) error) error {
	p := header.NewProcessor(path)
	if err := p.Load(); err != nil {
		return err
	}
	if err := mutate(p); err != nil {
		return err
	}
	return p.Save(false)
}
