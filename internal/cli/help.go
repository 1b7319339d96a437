package cli

import (
	"fmt"
	"io"

	"github.com/matzehuels/cargo-ls-crates/pkg/buildinfo"
	"github.com/matzehuels/cargo-ls-crates/pkg/flags"
)

// helpFlags lists each flag with its one-line description, in display order.
var helpFlags = []struct{ flag, desc string }{
	{"-h --help", "print help"},
	{"-v", "print versions"},
	{"-d", "print descriptions"},
	{"-p", "print cargo install roots"},
	{"-i", "list installed binary crates instead of project dependencies"},
}

var helpExamples = []struct{ args, desc string }{
	{"-v", "print package names and versions"},
	{"-d", "print package names and descriptions"},
	{"-vd", "print package names, versions and descriptions"},
	{"-dv", "print package names, versions and descriptions"},
	{"-iv", "print installed binaries and their versions"},
}

// renderHelp writes the usage text to w.
func renderHelp(w io.Writer, color bool) {
	p := newPalette(color)
	options := paint(p.options, "OPTIONS")
	call := paint(p.program, "cargo") + " " + paint(p.subcommand, flags.Subcommand)

	fmt.Fprintf(w, "%s %s\n", appName, paint(p.dim, buildinfo.Version))
	fmt.Fprintln(w, "List the crates the current project depends on.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "%s [%s]\n", call, options)
	fmt.Fprintf(w, "%s:\n", options)
	for _, f := range helpFlags {
		fmt.Fprintf(w, "\t%s %s\n", f.flag, f.desc)
	}
	fmt.Fprintf(w, "%s:\n", paint(p.heading, "Examples"))
	for _, ex := range helpExamples {
		fmt.Fprintf(w, "%s %s - %s\n", call, ex.args, ex.desc)
	}
	fmt.Fprintln(w, "Note:")
	fmt.Fprintln(w, "Flags may be combined (-vd). Invalid arguments will be ignored.")
}
