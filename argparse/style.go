package argparse

// Style represents how an argument appears on the command line
type Style int

const (
	// StylePositional is matched by position, e.g. `file`.
	StylePositional Style = iota
	// StyleOptional is a labelled argument followed by a value, e.g. `--number 10`.
	StyleOptional
	// StyleFlag is a labelled argument without a value, e.g. `--quiet`.
	StyleFlag
	// StyleHelp asks the parser to print the usage.
	StyleHelp
)

func (s Style) String() string {
	switch s {
	case StylePositional:
		return "positional"
	case StyleOptional:
		return "optional"
	case StyleFlag:
		return "flag"
	case StyleHelp:
		return "help"
	default:
		return "unknown"
	}
}

// HasFlagLikeLabel reports whether the style is identified by a "--"/"-" label.
func (s Style) HasFlagLikeLabel() bool {
	switch s {
	case StyleOptional, StyleFlag, StyleHelp:
		return true
	case StylePositional:
		return false
	default:
		return false
	}
}

// RequiresAdditionalValue reports whether the label must be followed by a value token.
func (s Style) RequiresAdditionalValue() bool {
	return s == StyleOptional
}

// RequiresValue reports whether the argument carries a value at all.
func (s Style) RequiresValue() bool {
	switch s {
	case StylePositional, StyleOptional:
		return true
	case StyleFlag, StyleHelp:
		return false
	default:
		return false
	}
}
