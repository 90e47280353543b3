// Package project infers repository-level facts: the copyright holder from
// pyproject.toml and the directory that holds the source files.
package project
