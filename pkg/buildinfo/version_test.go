package buildinfo

import "testing"

func TestString(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2025-01-01"
	if got, want := String(), "v1.2.3 (commit abc123, built 2025-01-01)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
