package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNoCrates, "no binaries under %s", "/tmp/x")

	if err.Code != ErrCodeNoCrates {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNoCrates)
	}
	if err.Message != "no binaries under /tmp/x" {
		t.Errorf("Message = %v", err.Message)
	}

	expected := "NO_CRATES: no binaries under /tmp/x"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 101")
	err := Wrap(ErrCodeMetadata, cause, "cargo metadata failed")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got, want := err.Error(), "METADATA_FAILED: cargo metadata failed: exit status 101"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeMetadata, "x"), ErrCodeMetadata, true},
		{"non-matching code", New(ErrCodeMetadata, "x"), ErrCodeNoCrates, false},
		{"outer code wins", Wrap(ErrCodeMetadata, New(ErrCodeInvalidMetadata, "inner"), "outer"), ErrCodeMetadata, true},
		{"fmt wrapped", fmt.Errorf("ctx: %w", New(ErrCodeNoInstallRoot, "x")), ErrCodeNoInstallRoot, true},
		{"plain error", errors.New("plain"), ErrCodeMetadata, false},
		{"nil", nil, ErrCodeMetadata, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNoCrates, "x")); got != ErrCodeNoCrates {
		t.Errorf("GetCode() = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeNoCrates, "nothing installed"), "nothing installed"},
		{"coded with cause", Wrap(ErrCodeMetadata, errors.New("exit status 101"), "cargo metadata failed"), "cargo metadata failed: exit status 101"},
		{"plain", errors.New("boom"), "boom"},
		{"multiline collapsed", errors.New("line one\n  line two\n"), "line one line two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
