package argparse

import "errors"

// ExitCodeDefaults holds the codes used when no category mapping matches.
type ExitCodeDefaults struct {
	Success       int // default: 0 (also used after printing help)
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps parser outcomes to process exit codes. Parse errors
// default to GeneralError (bad user input); declaration and usage errors are
// programming errors and default to MisusageError.
type ExitCodeManager struct {
	codes    map[ErrorType]int
	defaults ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codes:    make(map[ErrorType]int),
		defaults: defaultExitDefaults(),
	}
	for _, typ := range []ErrorType{
		ErrorTypeDuplicateLabel,
		ErrorTypeInvalidLabel,
		ErrorTypeShortLabelIsLongFlag,
		ErrorTypePositionalLabelIsFlagStyled,
		ErrorTypePositionalShortLabel,
		ErrorTypeUsage,
	} {
		m.codes[typ] = m.defaults.MisusageError
	}
	return m
}

// Define overrides the exit code for one error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codes[typ] = code
	return e
}

// Default replaces the fallback codes. Category mappings set with Define are kept.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an outcome to an exit code. Precedence:
//  1. nil and ErrHelpRequested map to Success
//  2. the category of a *ParseError, *DeclarationError or *UsageError, if defined
//  3. MisusageError for declaration and usage errors, GeneralError otherwise
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpRequested) {
		return e.defaults.Success
	}

	typ, misuse := errorTypeOf(err)
	if code, ok := e.codes[typ]; ok && typ != "" {
		return code
	}
	if misuse {
		return e.defaults.MisusageError
	}
	return e.defaults.GeneralError
}

// errorTypeOf extracts the category of err and whether it is a programming error.
func errorTypeOf(err error) (ErrorType, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Type, false
	}
	var derr *DeclarationError
	if errors.As(err, &derr) {
		return derr.Type, true
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return ErrorTypeUsage, true
	}
	return "", false
}
