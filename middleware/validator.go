package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dzonerzy/go-argparse/argparse"
)

// ValidatorFunc checks the parse result before the action runs. Use it for
// rules the declarations can not express: file system checks, numeric ranges,
// conditional requirements.
type ValidatorFunc func(res *argparse.Result) error

// NamedValidator associates a human-readable name with a ValidatorFunc for
// clearer error reporting.
type NamedValidator struct {
	Name string
	Fn   ValidatorFunc
}

// Custom wraps an arbitrary ValidatorFunc with a name for reporting.
func Custom(name string, fn ValidatorFunc) NamedValidator {
	return NamedValidator{Name: name, Fn: fn}
}

// File ensures the given string labels name existing regular files.
func File(labels ...string) NamedValidator {
	return NamedValidator{Name: "file_exists", Fn: FileExists(labels...)}
}

// Dir ensures the given string labels name existing directories.
func Dir(labels ...string) NamedValidator {
	return NamedValidator{Name: "directory_exists", Fn: DirectoryExists(labels...)}
}

// Validate runs the validators in order before the action and stops at the
// first failure. Errors that are not a *ValidationError get wrapped in one
// carrying the validator name.
//
// Example:
//
//	parser.RunAndExit(middleware.Chain(middleware.Validate(
//	    middleware.Custom("port_range", checkPort),
//	    middleware.File("config"),
//	)).Apply(run))
func Validate(validators ...NamedValidator) Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(res *argparse.Result) error {
			for _, v := range validators {
				if v.Fn == nil {
					continue
				}
				if err := v.Fn(res); err != nil {
					var verr *ValidationError
					if errors.As(err, &verr) {
						return verr
					}
					return &ValidationError{Label: v.Name, Message: "validation failed", Cause: err}
				}
			}
			return next(res)
		}
	}
}

// IntRange checks that the integer stored under label lies in [lo, hi].
// An absent label passes.
func IntRange(label string, lo, hi int64) ValidatorFunc {
	return func(res *argparse.Result) error {
		v, ok := res.Lookup(label)
		if !ok {
			return nil
		}
		n, ok := v.Int()
		if !ok {
			return &ValidationError{Label: label, Value: v.String(), Message: fmt.Sprintf("argument %s is not an integer", label)}
		}
		if n < lo || n > hi {
			return &ValidationError{
				Label:   label,
				Value:   n,
				Message: fmt.Sprintf("argument %s: %d is out of range [%d, %d]", label, n, lo, hi),
			}
		}
		return nil
	}
}

// ConditionalRequired makes labels mandatory when condition holds. A label
// counts as present when it maps to a non-zero value: a false flag or an
// empty string does not.
func ConditionalRequired(condition func(res *argparse.Result) bool, labels ...string) ValidatorFunc {
	return func(res *argparse.Result) error {
		if !condition(res) {
			return nil
		}
		var missing []string
		for _, label := range labels {
			if !present(res, label) {
				missing = append(missing, label)
			}
		}
		if len(missing) > 0 {
			return &ValidationError{
				Label:   strings.Join(missing, ", "),
				Message: "arguments required when condition is met: " + strings.Join(missing, ", "),
			}
		}
		return nil
	}
}

// FileExists creates a validator that ensures string labels point to existing files
func FileExists(labels ...string) ValidatorFunc {
	return pathValidator(labels, "file", validateFileExists)
}

// DirectoryExists creates a validator that ensures string labels point to existing directories
func DirectoryExists(labels ...string) ValidatorFunc {
	return pathValidator(labels, "directory", validateDirectoryExists)
}

func pathValidator(labels []string, what string, check func(string) error) ValidatorFunc {
	return func(res *argparse.Result) error {
		for _, label := range labels {
			v, ok := res.Lookup(label)
			if !ok {
				continue
			}
			path, ok := v.Str()
			if !ok || path == "" {
				continue
			}
			if err := check(path); err != nil {
				return &ValidationError{
					Label:   label,
					Value:   path,
					Message: fmt.Sprintf("%s validation failed for argument '%s'", what, label),
					Cause:   err,
				}
			}
		}
		return nil
	}
}

// present reports whether label holds a non-zero value.
func present(res *argparse.Result, label string) bool {
	v, ok := res.Lookup(label)
	if !ok {
		return false
	}
	switch v.Kind() {
	case argparse.KindBool:
		b, _ := v.Bool()
		return b
	case argparse.KindString:
		s, _ := v.Str()
		return s != ""
	default:
		return true
	}
}

func validateFileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func validateDirectoryExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
