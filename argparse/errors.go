package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents error categories for declaration and parsing failures.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	// Construction time
	ErrorTypeDuplicateLabel              ErrorType = "duplicate_label"
	ErrorTypeInvalidLabel                ErrorType = "invalid_label"
	ErrorTypeShortLabelIsLongFlag        ErrorType = "short_label_is_long_flag"
	ErrorTypePositionalLabelIsFlagStyled ErrorType = "positional_label_is_flag_styled"
	ErrorTypePositionalShortLabel        ErrorType = "positional_short_label"

	// Parse time
	ErrorTypeParameterExpectedAfterToken  ErrorType = "parameter_expected_after_token"
	ErrorTypeUnexpectedPositionalArgument ErrorType = "unexpected_positional_argument"
	ErrorTypeInvalidType                  ErrorType = "invalid_type"
	ErrorTypeNotInChoices                 ErrorType = "not_in_choices"
	ErrorTypeTooFewArguments              ErrorType = "too_few_arguments"

	// Library misuse
	ErrorTypeUsage ErrorType = "usage"
)

// ErrHelpRequested is returned by Parser.Parse when the first token asks for
// help, after the help handler (if any) has run.
var ErrHelpRequested = errors.New("help requested")

// DeclarationError reports an invalid argument declaration or an invalid
// combination of declarations. It is returned before any parsing happens.
type DeclarationError struct {
	Type     ErrorType
	Label    string    // offending label
	Argument *Argument // declaration being built or added, nil when unknown
}

func (e *DeclarationError) Error() string {
	name := e.Label
	if e.Argument != nil {
		name = e.Argument.Label()
	}
	switch e.Type {
	case ErrorTypeDuplicateLabel:
		return fmt.Sprintf("more than one argument with the same label '%s'", e.Label)
	case ErrorTypeInvalidLabel:
		return fmt.Sprintf("argument %s: invalid label '%s'", name, e.Label)
	case ErrorTypeShortLabelIsLongFlag:
		return fmt.Sprintf("argument %s: short label '%s' can not be a long flag", name, e.Label)
	case ErrorTypePositionalLabelIsFlagStyled:
		return fmt.Sprintf("argument %s: a positional label can not start with '-' or '--'", name)
	case ErrorTypePositionalShortLabel:
		return fmt.Sprintf("argument %s: a positional argument can not have a short label ('%s')", name, e.Label)
	default:
		return fmt.Sprintf("argument %s: invalid declaration (%s)", name, e.Type)
	}
}

// ParseError reports a token sequence that does not match the declared
// arguments. Suggestion, when set, is a close label for a mistyped flag and is
// not part of the message.
type ParseError struct {
	Type       ErrorType
	Argument   *Argument // nil for UnexpectedPositionalArgument and TooFewArguments
	Token      string
	Choices    []Value
	Suggestion string
}

func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeParameterExpectedAfterToken:
		return fmt.Sprintf("argument %s: expected one argument", e.Argument.Label())
	case ErrorTypeUnexpectedPositionalArgument:
		return "unrecognized parameter: " + e.Token
	case ErrorTypeInvalidType:
		return fmt.Sprintf("argument %s: invalid %s value: %s", e.Argument.Label(), e.Argument.Kind(), e.Token)
	case ErrorTypeNotInChoices:
		return fmt.Sprintf("argument %s: '%s' is not in the list of possible choices: %s",
			e.Argument.Label(), e.Token, quoteValues(e.Choices, ", "))
	case ErrorTypeTooFewArguments:
		return "too few arguments"
	default:
		return string(e.Type)
	}
}

// UsageError signals a programming error in how the library is used, such as
// an invalid declaration passed to a Must* constructor or a typed lookup with
// the wrong type. It is only ever raised through panic.
type UsageError struct {
	Message string
	Cause   error
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Unwrap() error {
	return e.Cause
}

// misuse panics with a UsageError wrapping err.
func misuse(err error) {
	panic(&UsageError{Message: err.Error(), Cause: err})
}

func quoteValues(values []Value, sep string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, "'"+v.String()+"'")
	}
	return strings.Join(quoted, sep)
}
