package flags

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want DisplayConfig
	}{
		{"no args", nil, DisplayConfig{}},
		{"version", []string{"-v"}, DisplayConfig{ShowVersion: true}},
		{"description", []string{"-d"}, DisplayConfig{ShowDescription: true}},
		{"cluster vd", []string{"-vd"}, DisplayConfig{ShowVersion: true, ShowDescription: true}},
		{"cluster dv", []string{"-dv"}, DisplayConfig{ShowVersion: true, ShowDescription: true}},
		{"separate", []string{"-d", "-v"}, DisplayConfig{ShowVersion: true, ShowDescription: true}},
		{"repeated", []string{"-vv", "-v"}, DisplayConfig{ShowVersion: true}},
		{"short help", []string{"-h"}, DisplayConfig{ShowHelp: true}},
		{"long help", []string{"--help"}, DisplayConfig{ShowHelp: true}},
		{"help with others", []string{"-v", "--help", "-d"}, DisplayConfig{ShowHelp: true, ShowVersion: true, ShowDescription: true}},
		{"paths", []string{"-p"}, DisplayConfig{ShowPaths: true}},
		{"installed", []string{"-iv"}, DisplayConfig{Installed: true, ShowVersion: true}},
		{"subcommand skipped", []string{"ls-crates", "-v"}, DisplayConfig{ShowVersion: true}},
		{"unknown letter in cluster", []string{"-xvz"}, DisplayConfig{ShowVersion: true}},
		{"unknown long flag", []string{"--banana"}, DisplayConfig{}},
		{"long flag containing v", []string{"--verbose"}, DisplayConfig{}},
		{"bare word", []string{"xyz"}, DisplayConfig{}},
		{"bare word with letters", []string{"vd"}, DisplayConfig{}},
		{"lone dash", []string{"-"}, DisplayConfig{}},
		{"double dash", []string{"--"}, DisplayConfig{}},
		{"digits in cluster", []string{"-v1"}, DisplayConfig{}},
		{"uppercase ignored", []string{"-V", "-D"}, DisplayConfig{}},
		{"help inside cluster", []string{"-vh"}, DisplayConfig{ShowVersion: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.args)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseUnrecognizedOnly(t *testing.T) {
	inputs := [][]string{
		{"--banana"},
		{"xyz", "--color=always", "foo/bar"},
		{"ls-crates"},
		{"", " ", "-1", "-_"},
	}
	for _, args := range inputs {
		if got := Parse(args); got != (DisplayConfig{}) {
			t.Errorf("Parse(%q) = %+v, want zero config", args, got)
		}
	}
}

func TestParseOrderInsensitive(t *testing.T) {
	a := Parse([]string{"-vd"})
	b := Parse([]string{"-dv"})
	if a != b {
		t.Errorf("Parse(-vd) = %+v, Parse(-dv) = %+v", a, b)
	}
}

func TestParseSubcommandOnlyFirst(t *testing.T) {
	// "ls-crates" later in the list is just an unrecognized token.
	got := Parse([]string{"-v", "ls-crates"})
	if got != (DisplayConfig{ShowVersion: true}) {
		t.Errorf("Parse = %+v", got)
	}
}

func TestClassifyDefaultIsNoop(t *testing.T) {
	acts := classify("--banana")
	if len(acts) != 1 {
		t.Fatalf("classify returned %d actions, want 1", len(acts))
	}
	var cfg DisplayConfig
	acts[0](&cfg)
	if cfg != (DisplayConfig{}) {
		t.Errorf("default action changed config: %+v", cfg)
	}
}
