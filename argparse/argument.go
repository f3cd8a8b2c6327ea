package argparse

import (
	"hash/fnv"
	"slices"
)

// DefaultState distinguishes "no default declared" from "declared as absent".
type DefaultState int

const (
	// NoDefaultDeclared means the declaration says nothing about a default.
	NoDefaultDeclared DefaultState = iota
	// DefaultIsAbsent means the default was declared to be "no value".
	DefaultIsAbsent
	// DefaultIsValue means the default is a concrete value.
	DefaultIsValue
)

// Default is the default of a declaration, used when the argument does not
// appear on the command line.
type Default struct {
	State DefaultState
	value Value
}

// DefaultOf returns a Default holding v.
func DefaultOf(v Value) Default {
	return Default{State: DefaultIsValue, value: v}
}

// Value returns the default value, if the default is a concrete value.
func (d Default) Value() (Value, bool) {
	return d.value, d.State == DefaultIsValue
}

// Declared reports whether a default was declared at all.
func (d Default) Declared() bool {
	return d.State != NoDefaultDeclared
}

// Argument is the immutable declaration of one expected command-line argument.
// Arguments are built with Positional, Optional, Flag or Help.
type Argument struct {
	label      string
	shortLabel string
	style      Style
	kind       Kind
	def        Default
	choices    []Value
	help       string
	convert    Converter
}

// newArgument normalizes and validates the labels for the given style.
func newArgument(label, shortLabel string, style Style, kind Kind, def Default, choices []Value, help string) (*Argument, error) {
	arg := &Argument{
		style:   style,
		kind:    kind,
		def:     def,
		help:    help,
		convert: ConverterFor(kind),
	}
	if len(choices) > 0 {
		arg.choices = slices.Clone(choices)
	}

	if style.HasFlagLikeLabel() {
		arg.label = AddLongFlagPrefix(label)
		if shortLabel != "" {
			arg.shortLabel = AddShortFlagPrefix(shortLabel)
			if IsLongFlagStyle(arg.shortLabel) {
				return nil, &DeclarationError{Type: ErrorTypeShortLabelIsLongFlag, Label: arg.shortLabel, Argument: arg}
			}
			// "-v" with short "v" is one label
			if arg.shortLabel == arg.label {
				arg.shortLabel = ""
			}
		}
	} else {
		arg.label = label
		for _, l := range []string{label, shortLabel} {
			if IsFlagStyle(l) {
				arg.label = RemoveFlagPrefix(label)
				return nil, &DeclarationError{Type: ErrorTypePositionalLabelIsFlagStyled, Label: l, Argument: arg}
			}
		}
		if shortLabel != "" {
			return nil, &DeclarationError{Type: ErrorTypePositionalShortLabel, Label: shortLabel, Argument: arg}
		}
	}

	for _, l := range arg.Labels() {
		if !IsValidArgumentName(l) {
			return nil, &DeclarationError{Type: ErrorTypeInvalidLabel, Label: l, Argument: arg}
		}
	}
	return arg, nil
}

// Label returns the canonical label ("--count" or "count").
func (a *Argument) Label() string { return a.label }

// ShortLabel returns the short alias ("-c"), or "" when none was declared.
func (a *Argument) ShortLabel() string { return a.shortLabel }

func (a *Argument) Style() Style { return a.style }

// Kind returns the type of the values this argument converts to.
func (a *Argument) Kind() Kind { return a.kind }

func (a *Argument) Default() Default { return a.def }

func (a *Argument) Help() string { return a.help }

// Choices returns a copy of the allowed values, or nil when unrestricted.
func (a *Argument) Choices() []Value { return slices.Clone(a.choices) }

// Labels returns every label the argument owns, canonical label first.
func (a *Argument) Labels() []string {
	if a.shortLabel == "" {
		return []string{a.label}
	}
	return []string{a.label, a.shortLabel}
}

// CompactLabel returns the short label if present, the label otherwise.
func (a *Argument) CompactLabel() string {
	if a.shortLabel != "" {
		return a.shortLabel
	}
	return a.label
}

// IsOptional reports whether the argument may be omitted from the command line.
func (a *Argument) IsOptional() bool {
	return a.style != StylePositional
}

// Convert turns a token into a value of the argument's kind.
func (a *Argument) Convert(token string) (Value, bool) {
	if a.convert == nil {
		return Value{}, false
	}
	return a.convert(token)
}

// allows reports whether v satisfies the choices, if any.
func (a *Argument) allows(v Value) bool {
	if len(a.choices) == 0 {
		return true
	}
	return slices.ContainsFunc(a.choices, v.Equal)
}

// Equal reports whether two declarations have the same kind, label set, help
// text and style. Defaults and choices do not take part.
func (a *Argument) Equal(o *Argument) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.kind == o.kind &&
		a.help == o.help &&
		a.style == o.style &&
		slices.Equal(a.sortedLabels(), o.sortedLabels())
}

// Hash is derived from the label set, consistent with Equal.
func (a *Argument) Hash() uint64 {
	h := fnv.New64a()
	for _, l := range a.sortedLabels() {
		_, _ = h.Write([]byte(l))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

func (a *Argument) sortedLabels() []string {
	labels := a.Labels()
	slices.Sort(labels)
	return labels
}
