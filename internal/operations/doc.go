// Package operations implements the batch workflows: walking a source tree,
// adding, changing, removing, and verifying SPDX headers, extracting license
// text, and previewing a license in the system viewer. Files are processed
// strictly one at a time; per-file failures are collected so one bad file
// never aborts the batch.
package operations
