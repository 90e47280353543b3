package license

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"spdxer/internal/fileutil"
	"spdxer/internal/logging"
)

// maxListSize caps how much of the SPDX listing we are willing to read.
const maxListSize = 32 << 20

// spdxLicenseList mirrors the fields we consume from the official SPDX
// licenses.json document.
type spdxLicenseList struct {
	Version  string `json:"licenseListVersion"`
	Licenses []struct {
		ID         string `json:"licenseId"`
		Name       string `json:"name"`
		Deprecated bool   `json:"isDeprecatedLicenseId"`
		OSI        bool   `json:"isOsiApproved"`
		FSF        bool   `json:"isFsfLibre"`
	} `json:"licenses"`
}

// UpdateOptions configures a dataset refresh.
type UpdateOptions struct {
	URL      string
	Timeout  time.Duration
	DataFile string
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Update downloads the SPDX license list, merges it with any header templates
// already present in the local dataset, and writes the result atomically to
// opts.DataFile. A file lock guards against concurrent updates.
func Update(ctx context.Context, opts UpdateOptions, logger *slog.Logger) (*Registry, error) {
	if err := os.MkdirAll(filepath.Dir(opts.DataFile), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(opts.DataFile + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock license data: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("license data update already in progress for %s", opts.DataFile)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger.Info("downloading SPDX license list", logging.String("url", opts.URL))
	list, err := fetchList(ctx, opts)
	if err != nil {
		return nil, err
	}

	previous, err := Load(opts.DataFile)
	if err != nil {
		logger.Warn("ignoring unreadable local dataset", logging.Error(err))
		previous = nil
	}

	entries := make(map[string]Entry, len(list.Licenses))
	for _, lic := range list.Licenses {
		entry := Entry{
			Name:        lic.Name,
			Deprecated:  lic.Deprecated,
			OSIApproved: lic.OSI,
			FSFLibre:    lic.FSF,
		}
		if previous != nil {
			if old, ok := previous.entries[lic.ID]; ok {
				entry.HeaderTemplate = old.HeaderTemplate
				entry.Text = old.Text
			}
		}
		entries[lic.ID] = entry
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("SPDX listing from %s contained no licenses", opts.URL)
	}

	meta := Metadata{
		SPDXVersion:  list.Version,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		LicenseCount: len(entries),
	}
	payload, err := json.MarshalIndent(dataFile{Metadata: meta, Licenses: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode license data: %w", err)
	}
	if err := fileutil.WriteAtomic(opts.DataFile, append(payload, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write license data: %w", err)
	}

	logger.Info("license data updated",
		logging.String("path", opts.DataFile),
		logging.String("spdx_version", meta.SPDXVersion),
		logging.Int("licenses", meta.LicenseCount))
	return NewRegistry(meta, entries), nil
}

func fetchList(ctx context.Context, opts UpdateOptions) (*spdxLicenseList, error) {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch SPDX license list: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch SPDX license list: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListSize))
	if err != nil {
		return nil, fmt.Errorf("read SPDX license list: %w", err)
	}
	var list spdxLicenseList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parse SPDX license list: %w", err)
	}
	return &list, nil
}
