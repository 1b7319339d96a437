package crates

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargo-ls-crates/pkg/errors"
	"github.com/matzehuels/cargo-ls-crates/pkg/flags"
)

// Styles decorates the three output columns. The zero value renders
// plain text.
type Styles struct {
	Name        *lipgloss.Style
	Version     *lipgloss.Style
	Description *lipgloss.Style
}

// ColorStyles mirrors the classic cargo-ls-crates palette: bold green
// names, yellow versions, blue descriptions.
func ColorStyles() Styles {
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	version := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	return Styles{Name: &name, Version: &version, Description: &desc}
}

func render(s *lipgloss.Style, text string) string {
	if s == nil {
		return text
	}
	return s.Render(text)
}

// Lister writes the crate list for a project.
//
// A Lister holds no state between calls; listing the same unchanged
// project twice produces identical output.
type Lister struct {
	Source Source
	Config flags.DisplayConfig
	Styles Styles
}

// NewLister creates a plain-text lister over src.
func NewLister(src Source, cfg flags.DisplayConfig) *Lister {
	return &Lister{Source: src, Config: cfg}
}

// List resolves the crates for dir and writes one line per crate to w.
//
// The source is queried exactly once, before anything is written. If it
// fails nothing is written and the error is returned with the
// [errors.ErrCodeMetadata] code unless the source already attached one.
func (l *Lister) List(ctx context.Context, w io.Writer, dir string) (int, error) {
	infos, err := l.Source.Resolve(ctx, dir)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeMetadata, err, "resolve dependencies")
		}
		return 0, err
	}
	return len(infos), l.Write(w, infos)
}

// Write formats infos and writes them to w, one newline-terminated line
// per crate.
func (l *Lister) Write(w io.Writer, infos []CrateInfo) error {
	bw := bufio.NewWriter(w)
	for _, info := range infos {
		bw.WriteString(l.FormatLine(info))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FormatLine renders a single crate without the trailing newline.
func (l *Lister) FormatLine(info CrateInfo) string {
	fields := []string{render(l.Styles.Name, info.Name)}
	if l.Config.ShowVersion {
		fields = append(fields, render(l.Styles.Version, orPlaceholder(info.Version)))
	}
	if l.Config.ShowDescription {
		desc := Placeholder
		if info.HasDescription {
			desc = orPlaceholder(singleLine(info.Description))
		}
		fields = append(fields, render(l.Styles.Description, desc))
	}
	return strings.Join(fields, " ")
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// singleLine collapses runs of whitespace, including the newlines that
// multi-line TOML descriptions carry, into single spaces.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
