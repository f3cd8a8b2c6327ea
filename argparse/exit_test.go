//nolint:testpackage // using package name 'argparse' to access unexported fields for testing
package argparse

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeManager_Resolve(t *testing.T) {
	_, declErr := Flag("bad label").Build()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"help", ErrHelpRequested, 0},
		{"wrapped help", fmt.Errorf("cli: %w", ErrHelpRequested), 0},
		{"parse error", &ParseError{Type: ErrorTypeTooFewArguments}, 1},
		{"wrapped parse error", fmt.Errorf("x: %w", &ParseError{Type: ErrorTypeInvalidType}), 1},
		{"declaration error", declErr, 2},
		{"usage wrapping a declaration", &UsageError{Message: "m", Cause: declErr}, 2},
		{"plain usage", &UsageError{Message: "m"}, 2},
		{"foreign error", errors.New("boom"), 1},
	}

	m := newExitCodeManager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Resolve(tt.err); got != tt.want {
				t.Errorf("Resolve(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeManager_Overrides(t *testing.T) {
	m := newExitCodeManager().
		Define(ErrorTypeNotInChoices, 64).
		Define(ErrorTypeInvalidLabel, 70).
		Default(ExitCodeDefaults{Success: 0, GeneralError: 10, MisusageError: 20})

	if got := m.Resolve(&ParseError{Type: ErrorTypeNotInChoices}); got != 64 {
		t.Errorf("defined category = %d, want 64", got)
	}
	if got := m.Resolve(&ParseError{Type: ErrorTypeTooFewArguments}); got != 10 {
		t.Errorf("general fallback = %d, want 10", got)
	}
	if got := m.Resolve(&DeclarationError{Type: ErrorTypeInvalidLabel}); got != 70 {
		t.Errorf("defined declaration category = %d, want 70", got)
	}
	// categories pre-wired before Default keep their old code
	if got := m.Resolve(&DeclarationError{Type: ErrorTypeDuplicateLabel}); got != 2 {
		t.Errorf("pre-wired category = %d, want 2", got)
	}
	if got := m.Resolve(errors.New("x")); got != 10 {
		t.Errorf("foreign error = %d, want 10", got)
	}
}

func TestParser_ExitCodesAreConfigurable(t *testing.T) {
	p, out := newTestParser(t, []*Argument{Positional[int64]("n").MustBuild()})
	p.ExitCodes().Define(ErrorTypeInvalidType, 65)

	p.ParseOrExit([]string{"x"})
	if len(out.codes) != 1 || out.codes[0] != 65 {
		t.Errorf("exit codes = %v, want [65]", out.codes)
	}
}
