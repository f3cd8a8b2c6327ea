package argparse

// ArgumentBuilder provides a fluent API for declaring positional and optional
// arguments with type safety. T is the Go type values convert to.
type ArgumentBuilder[T Parsable] struct {
	label      string
	shortLabel string
	style      Style
	def        Default
	choices    []Value
	help       string
}

// Positional starts the declaration of a positional argument. The label must
// not start with "-" or "--".
func Positional[T Parsable](label string) *ArgumentBuilder[T] {
	return &ArgumentBuilder[T]{label: label, style: StylePositional}
}

// Optional starts the declaration of an optional argument, whose label is
// followed by a value on the command line. A missing "--" prefix is added.
func Optional[T Parsable](label string) *ArgumentBuilder[T] {
	return &ArgumentBuilder[T]{label: label, style: StyleOptional}
}

// Short sets the short alias (e.g. "n" or "-n"). Positional arguments reject it at Build time.
func (b *ArgumentBuilder[T]) Short(label string) *ArgumentBuilder[T] {
	b.shortLabel = label
	return b
}

// Default sets the value used when the argument is not on the command line.
func (b *ArgumentBuilder[T]) Default(value T) *ArgumentBuilder[T] {
	b.def = DefaultOf(ValueOf(value))
	return b
}

// DefaultAbsent declares that the argument defaults to no value.
func (b *ArgumentBuilder[T]) DefaultAbsent() *ArgumentBuilder[T] {
	b.def = Default{State: DefaultIsAbsent}
	return b
}

// Choices restricts the accepted values. Defaults are not checked against them.
func (b *ArgumentBuilder[T]) Choices(values ...T) *ArgumentBuilder[T] {
	b.choices = b.choices[:0]
	for _, v := range values {
		b.choices = append(b.choices, ValueOf(v))
	}
	return b
}

// Usage sets the help text shown in the usage description
func (b *ArgumentBuilder[T]) Usage(help string) *ArgumentBuilder[T] {
	b.help = help
	return b
}

// Build validates the declaration.
func (b *ArgumentBuilder[T]) Build() (*Argument, error) {
	return newArgument(b.label, b.shortLabel, b.style, KindOf[T](), b.def, b.choices, b.help)
}

// MustBuild is like Build but panics with a *UsageError on invalid declarations.
func (b *ArgumentBuilder[T]) MustBuild() *Argument {
	arg, err := b.Build()
	if err != nil {
		misuse(err)
	}
	return arg
}

// FlagBuilder declares value-less arguments: flags and the help argument.
type FlagBuilder struct {
	label      string
	shortLabel string
	style      Style
	help       string
}

// Flag starts the declaration of a boolean flag. It resolves to false when
// absent and true when present.
func Flag(label string) *FlagBuilder {
	return &FlagBuilder{label: label, style: StyleFlag}
}

// Help starts the declaration of a help argument. The short label defaults
// to "-h" and the text to "show this help message and exit".
func Help(label string) *FlagBuilder {
	return &FlagBuilder{
		label:      label,
		shortLabel: "-h",
		style:      StyleHelp,
		help:       "show this help message and exit",
	}
}

// DefaultHelp returns the standard "--help, -h" argument.
func DefaultHelp() *Argument {
	return Help("--help").MustBuild()
}

func (b *FlagBuilder) Short(label string) *FlagBuilder {
	b.shortLabel = label
	return b
}

func (b *FlagBuilder) Usage(help string) *FlagBuilder {
	b.help = help
	return b
}

// Build validates the declaration.
func (b *FlagBuilder) Build() (*Argument, error) {
	return newArgument(b.label, b.shortLabel, b.style, KindBool, DefaultOf(BoolValue(false)), nil, b.help)
}

// MustBuild is like Build but panics with a *UsageError on invalid declarations.
func (b *FlagBuilder) MustBuild() *Argument {
	arg, err := b.Build()
	if err != nil {
		misuse(err)
	}
	return arg
}
