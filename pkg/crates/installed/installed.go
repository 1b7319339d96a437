// Package installed lists crates installed with "cargo install".
//
// # Install roots
//
// Candidate roots are checked in the order cargo documents:
//
//	$CARGO_INSTALL_ROOT
//	$CARGO_HOME
//	$HOME/.cargo
//
// Duplicates and directories that do not exist are dropped.
//
// # Lookup
//
// Every file in <root>/bin is reported as one crate. Version and
// description come from the unpacked sources under
// <root>/registry/src/<index>/<name>-<version>/Cargo.toml; a package's
// [[bin]] targets are looked up under the package's entry too. When
// several versions of a crate are unpacked the highest one wins.
// Binaries with no matching source get [crates.Placeholder] as version
// and no description.
package installed

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargo-ls-crates/pkg/crates"
	"github.com/matzehuels/cargo-ls-crates/pkg/errors"
)

// versionSuffix finds the "-<major>.<minor>.<patch>" that separates a
// crate name from its version in a registry source directory name.
var versionSuffix = regexp.MustCompile(`-\d+\.\d+\.\d+`)

// Source scans cargo install roots.
type Source struct {
	Getenv func(string) string // defaults to os.Getenv
	Logger *log.Logger         // optional debug logger
}

// New creates a Source reading the process environment.
func New(logger *log.Logger) *Source {
	return &Source{Getenv: os.Getenv, Logger: logger}
}

// Roots returns the existing install roots in precedence order.
func (s *Source) Roots() []string {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var candidates []string
	if v := getenv("CARGO_INSTALL_ROOT"); v != "" {
		candidates = append(candidates, v)
	}
	if v := getenv("CARGO_HOME"); v != "" {
		candidates = append(candidates, v)
	}
	if v := getenv("HOME"); v != "" {
		candidates = append(candidates, filepath.Join(v, ".cargo"))
	}

	seen := make(map[string]bool, len(candidates))
	var roots []string
	for _, c := range candidates {
		c = filepath.Clean(c)
		if seen[c] {
			continue
		}
		seen[c] = true
		if fi, err := os.Stat(c); err == nil && fi.IsDir() {
			roots = append(roots, c)
		}
	}
	return roots
}

// Resolve implements crates.Source. dir is ignored: installed crates
// belong to the user, not to a project.
func (s *Source) Resolve(ctx context.Context, _ string) ([]crates.CrateInfo, error) {
	roots := s.Roots()
	if len(roots) == 0 {
		return nil, errors.New(errors.ErrCodeNoInstallRoot, "failed to locate cargo install root (checked CARGO_INSTALL_ROOT, CARGO_HOME, HOME/.cargo)")
	}

	idx := make(index)
	var bins []string
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names := listBins(root)
		s.debug("scanned install root", "root", root, "binaries", len(names))
		bins = append(bins, names...)
		s.scanSources(idx, root)
	}

	if len(bins) == 0 {
		return nil, errors.New(errors.ErrCodeNoCrates, "no installed crates found in %s", strings.Join(roots, ", "))
	}

	infos := make([]crates.CrateInfo, 0, len(bins))
	for _, bin := range bins {
		infos = append(infos, idx.lookup(bin))
	}
	return infos, nil
}

func (s *Source) debug(msg string, kv ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, kv...)
	}
}

// listBins returns the file names in root/bin, sorted by name.
func listBins(root string) []string {
	entries, err := os.ReadDir(filepath.Join(root, "bin"))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

// scanSources indexes every unpacked crate under root/registry/src.
func (s *Source) scanSources(idx index, root string) {
	registries, err := os.ReadDir(filepath.Join(root, "registry", "src"))
	if err != nil {
		return
	}
	for _, reg := range registries {
		if !reg.IsDir() {
			continue
		}
		regDir := filepath.Join(root, "registry", "src", reg.Name())
		pkgs, err := os.ReadDir(regDir)
		if err != nil {
			continue
		}
		for _, pkg := range pkgs {
			if !pkg.IsDir() {
				continue
			}
			m, ok := readManifest(filepath.Join(regDir, pkg.Name()))
			if !ok {
				s.debug("skipping unreadable crate source", "dir", pkg.Name())
				continue
			}
			idx.add(m)
		}
	}
}

// manifest is the subset of a crate's Cargo.toml this package reads.
type manifest struct {
	Package struct {
		Name        string  `toml:"name"`
		Version     string  `toml:"version"`
		Description *string `toml:"description"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// readManifest loads dir/Cargo.toml. Name and version fall back to the
// directory name when the manifest omits them or cannot be decoded.
func readManifest(dir string) (manifest, bool) {
	var m manifest
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return m, false
	}
	if _, err := toml.Decode(string(data), &m); err != nil {
		m = manifest{}
	}
	if m.Package.Name == "" || m.Package.Version == "" {
		name, version, ok := splitDirName(filepath.Base(dir))
		if !ok {
			return m, false
		}
		if m.Package.Name == "" {
			m.Package.Name = name
		}
		if m.Package.Version == "" {
			m.Package.Version = version
		}
	}
	return m, true
}

// splitDirName splits "serde_json-1.0.108" into "serde_json" and "1.0.108".
func splitDirName(base string) (name, version string, ok bool) {
	loc := versionSuffix.FindStringIndex(base)
	if loc == nil || loc[0] == 0 {
		return "", "", false
	}
	return base[:loc[0]], base[loc[0]+1:], true
}

type entry struct {
	version     string
	semver      *semver.Version
	description *string
}

// newer reports whether e should replace old.
func (e entry) newer(old entry) bool {
	switch {
	case e.semver != nil && old.semver != nil:
		return e.semver.GreaterThan(old.semver)
	case e.semver != nil:
		return true
	case old.semver != nil:
		return false
	default:
		return e.version > old.version
	}
}

// index maps package and binary names to the best known source entry.
type index map[string]entry

func (idx index) add(m manifest) {
	e := entry{version: m.Package.Version, description: m.Package.Description}
	if v, err := semver.NewVersion(m.Package.Version); err == nil {
		e.semver = v
	}

	names := []string{m.Package.Name}
	for _, b := range m.Bin {
		if b.Name != "" && b.Name != m.Package.Name {
			names = append(names, b.Name)
		}
	}
	for _, n := range names {
		if old, ok := idx[n]; ok && !e.newer(old) {
			continue
		}
		idx[n] = e
	}
}

func (idx index) lookup(bin string) crates.CrateInfo {
	info := crates.CrateInfo{Name: bin, Version: crates.Placeholder}
	e, ok := idx[strings.TrimSuffix(bin, ".exe")]
	if !ok {
		return info
	}
	info.Version = e.version
	if e.description != nil {
		info = info.WithDescription(*e.description)
	}
	return info
}
