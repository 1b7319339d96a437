// Package crates lists the crates a Rust project depends on.
//
// # Overview
//
// A [Source] resolves the crate set for a project directory; [Lister]
// queries it once and writes one line per crate:
//
//	serde 1.0.0 a serialization framework
//	libc 0.2.0 n/a
//
// Fields are joined by a single space in the fixed order name, version,
// description. Version and description are each included only when the
// matching [flags.DisplayConfig] field is set. A missing description is
// written as [Placeholder] so columns stay aligned.
//
// Lines come out in the order the source returned them; the lister never
// sorts.
//
// # Sources
//
// The default source runs "cargo metadata" (see [metadata]); the
// installed source scans cargo install roots (see [installed]). Tests use
// in-memory fakes.
//
// [flags.DisplayConfig]: github.com/matzehuels/cargo-ls-crates/pkg/flags.DisplayConfig
// [metadata]: github.com/matzehuels/cargo-ls-crates/pkg/crates/metadata
// [installed]: github.com/matzehuels/cargo-ls-crates/pkg/crates/installed
package crates

import "context"

// Placeholder stands in for a field the source could not provide.
const Placeholder = "n/a"

// CrateInfo is a read-only snapshot of one dependency.
type CrateInfo struct {
	Name           string // Package name, never empty
	Version        string // Version string as reported by the source, not validated
	Description    string // Package description, meaningful only if HasDescription
	HasDescription bool   // False when the package declares no description
}

// WithDescription returns a copy of c carrying desc as its description.
func (c CrateInfo) WithDescription(desc string) CrateInfo {
	c.Description = desc
	c.HasDescription = true
	return c
}

// Source resolves the dependency set of the project rooted at (or
// enclosing) dir.
type Source interface {
	Resolve(ctx context.Context, dir string) ([]CrateInfo, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, dir string) ([]CrateInfo, error)

// Resolve calls f(ctx, dir).
func (f SourceFunc) Resolve(ctx context.Context, dir string) ([]CrateInfo, error) {
	return f(ctx, dir)
}
