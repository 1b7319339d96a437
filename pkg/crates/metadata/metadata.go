// Package metadata resolves a project's crates through "cargo metadata".
//
// cargo does all of the work: it finds the manifest by walking up from
// the working directory, resolves the lock file, and reports every
// package in the resolved graph. [Source] keeps every package that is
// not a workspace member, in the order cargo lists them, which is sorted
// by package id.
package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargo-ls-crates/pkg/crates"
	"github.com/matzehuels/cargo-ls-crates/pkg/errors"
)

// FormatVersion is the cargo metadata schema version this package decodes.
const FormatVersion = "1"

// Runner executes name with args in dir and returns its stdout and stderr.
// A non-nil error means the command could not start or exited non-zero.
type Runner func(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)

// ExecRunner runs the command as a subprocess.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

// Source queries cargo for the resolved dependency set.
type Source struct {
	Cargo  string      // cargo binary; defaults to $CARGO, then "cargo"
	Run    Runner      // defaults to ExecRunner
	Logger *log.Logger // optional debug logger
}

// New creates a Source that runs the given cargo binary. An empty cargo
// means "$CARGO, else cargo from PATH".
func New(cargo string, logger *log.Logger) *Source {
	return &Source{Cargo: cargo, Run: ExecRunner, Logger: logger}
}

// Args returns the cargo arguments used to query metadata.
func Args() []string {
	return []string{"metadata", "--format-version", FormatVersion, "--color", "never"}
}

// Resolve implements crates.Source.
func (s *Source) Resolve(ctx context.Context, dir string) ([]crates.CrateInfo, error) {
	cargo := s.cargo()
	run := s.Run
	if run == nil {
		run = ExecRunner
	}

	if s.Logger != nil {
		s.Logger.Debug("querying cargo", "cargo", cargo, "args", strings.Join(Args(), " "), "dir", dir)
	}

	stdout, stderr, err := run(ctx, dir, cargo, Args()...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if msg := diagnostic(stderr); msg != "" {
			return nil, errors.Wrap(errors.ErrCodeMetadata, err, "cargo metadata: %s", msg)
		}
		return nil, errors.Wrap(errors.ErrCodeMetadata, err, "cargo metadata")
	}
	return Decode(stdout)
}

func (s *Source) cargo() string {
	if s.Cargo != "" {
		return s.Cargo
	}
	if env := os.Getenv("CARGO"); env != "" {
		return env
	}
	return "cargo"
}

// Decode extracts the non-member packages from cargo metadata JSON.
func Decode(data []byte) ([]crates.CrateInfo, error) {
	var md cargoMetadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "decode cargo metadata")
	}

	members := make(map[string]bool, len(md.WorkspaceMembers))
	for _, id := range md.WorkspaceMembers {
		members[id] = true
	}

	infos := make([]crates.CrateInfo, 0, len(md.Packages))
	for _, p := range md.Packages {
		if members[p.ID] || p.Name == "" {
			continue
		}
		info := crates.CrateInfo{Name: p.Name, Version: p.Version}
		if p.Description != nil {
			info = info.WithDescription(*p.Description)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// diagnostic picks the most useful line of cargo's stderr: the first
// line starting with "error", or else the first non-blank line.
func diagnostic(stderr []byte) string {
	var first string
	for _, line := range strings.Split(string(stderr), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "error") {
			return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "error"), ":"))
		}
		if first == "" {
			first = line
		}
	}
	return first
}

type cargoMetadata struct {
	Packages         []cargoPackage `json:"packages"`
	WorkspaceMembers []string       `json:"workspace_members"`
}

type cargoPackage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description *string `json:"description"`
}
