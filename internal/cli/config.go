package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// logEnv names the environment variable that sets the log level.
const logEnv = "CARGO_LS_CRATES_LOG"

// Config is the environment-derived configuration, loaded once at startup.
// The argument list is reserved for the display flags, so everything else
// comes from the environment.
type Config struct {
	Dir      string    // project directory handed to the crate source
	Cargo    string    // cargo binary ($CARGO); empty means "cargo" from PATH
	LogLevel log.Level // from CARGO_LS_CRATES_LOG; warn by default
	Color    bool      // style output; stdout is a terminal and NO_COLOR is unset
}

// LoadConfig reads the process environment.
func LoadConfig() Config {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return Config{
		Dir:      dir,
		Cargo:    os.Getenv("CARGO"),
		LogLevel: parseLevel(os.Getenv(logEnv)),
		Color:    os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// parseLevel maps a level name to a log.Level. Unknown or empty names
// fall back to warn so a successful run writes nothing to stderr.
func parseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || s == "" {
		return log.WarnLevel
	}
	return level
}
