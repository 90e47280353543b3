// Package main hosts the spdxer CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto the batch
// header operations, license registry queries, data updates, and
// configuration scaffolding. It centralizes configuration resolution,
// registry loading, and structured logging setup so subcommands stay thin.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
