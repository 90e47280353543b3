package operations

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"spdxer/internal/logging"
	"spdxer/internal/testsupport"
)

func TestShowWritesTempFileAndOpens(t *testing.T) {
	var opened string
	path, err := Show(extractRegistry(t), "MIT", ShowOptions{
		Open:  func(p string) error { opened = p; return nil },
		Width: 79,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	if opened != path {
		t.Errorf("opener got %q, Show returned %q", opened, path)
	}
	if !strings.Contains(path, "MIT") {
		t.Errorf("temp name should carry the license key: %q", path)
	}
	content := testsupport.ReadFile(t, path)
	if !strings.Contains(content, "MIT License") {
		t.Errorf("preview content = %q", content[:60])
	}
}

func TestShowCleansUpAfterDelay(t *testing.T) {
	path, err := Show(extractRegistry(t), "MIT", ShowOptions{
		Open:         func(string) error { return nil },
		CleanupDelay: 20 * time.Millisecond,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("Show: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("temp file %s still present after cleanup delay", path)
}

func TestShowOpenerFailureRemovesTempFile(t *testing.T) {
	openErr := errors.New("no viewer")
	var opened string
	_, err := Show(extractRegistry(t), "MIT", ShowOptions{
		Open: func(p string) error { opened = p; return openErr },
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected opener failure to propagate")
	}
	if _, statErr := os.Stat(opened); !os.IsNotExist(statErr) {
		t.Errorf("temp file %s should be removed on opener failure", opened)
	}
}

func TestShowUnknownLicense(t *testing.T) {
	if _, err := Show(extractRegistry(t), "nope", ShowOptions{
		Open: func(string) error { return nil },
	}, logging.NewNop()); err == nil {
		t.Fatal("expected lookup failure")
	}
}
