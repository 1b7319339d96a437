// Package flags turns the raw argument list of cargo-ls-crates into a
// [DisplayConfig].
//
// The grammar is deliberately lenient. Only three token shapes mean
// anything:
//
//   - "-h" and "--help" request the usage text
//   - a short cluster such as "-v", "-d", "-vd" or "-dv"
//   - the subcommand name "ls-crates" that cargo passes through, which is skipped
//
// Every other token, including unknown letters inside a cluster, is a
// no-op. [Parse] never fails.
package flags

// Subcommand is the name cargo passes as the first argument when the tool
// is invoked as "cargo ls-crates".
const Subcommand = "ls-crates"

// DisplayConfig selects what the crate listing shows.
//
// The zero value prints crate names only, for the current project.
// ShowHelp short-circuits everything else; ShowPaths short-circuits the
// listing. ShowVersion and ShowDescription are independent.
type DisplayConfig struct {
	ShowVersion     bool // -v: append the version column
	ShowDescription bool // -d: append the description column
	ShowHelp        bool // -h, --help: print usage and exit
	ShowPaths       bool // -p: print cargo install roots and exit
	Installed       bool // -i: list `cargo install`ed crates instead of project deps
}

// action mutates a DisplayConfig under construction.
type action func(*DisplayConfig)

func noop(*DisplayConfig) {}

var shortFlags = map[rune]action{
	'v': func(c *DisplayConfig) { c.ShowVersion = true },
	'd': func(c *DisplayConfig) { c.ShowDescription = true },
	'p': func(c *DisplayConfig) { c.ShowPaths = true },
	'i': func(c *DisplayConfig) { c.Installed = true },
}

func showHelp(c *DisplayConfig) { c.ShowHelp = true }

// Parse builds a DisplayConfig from args, the tokens following the
// program name. A leading "ls-crates" token is skipped.
func Parse(args []string) DisplayConfig {
	if len(args) > 0 && args[0] == Subcommand {
		args = args[1:]
	}
	var cfg DisplayConfig
	for _, arg := range args {
		for _, act := range classify(arg) {
			act(&cfg)
		}
	}
	return cfg
}

// classify maps one token to the actions it triggers. Unrecognized
// tokens map to a single no-op.
func classify(arg string) []action {
	switch {
	case arg == "-h" || arg == "--help":
		return []action{showHelp}
	case isCluster(arg):
		acts := make([]action, 0, len(arg)-1)
		for _, r := range arg[1:] {
			if act, ok := shortFlags[r]; ok {
				acts = append(acts, act)
			}
		}
		return acts
	default:
		return []action{noop}
	}
}

// isCluster reports whether arg has the shape "-" followed by one or more
// ASCII letters.
func isCluster(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	for _, r := range arg[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
