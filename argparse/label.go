package argparse

import (
	"strings"
	"unicode"
)

const (
	longFlagPrefix  = "--"
	shortFlagPrefix = "-"
)

// IsLongFlagStyle reports whether s carries the long flag prefix ("--").
func IsLongFlagStyle(s string) bool {
	return strings.HasPrefix(s, longFlagPrefix)
}

// IsShortFlagStyle reports whether s carries the short flag prefix ("-") but not the long one.
func IsShortFlagStyle(s string) bool {
	return strings.HasPrefix(s, shortFlagPrefix) && !IsLongFlagStyle(s)
}

// IsFlagStyle reports whether s looks like a long or short flag
func IsFlagStyle(s string) bool {
	return IsLongFlagStyle(s) || IsShortFlagStyle(s)
}

// AddLongFlagPrefix prepends "--" unless s is already flag styled in any form.
func AddLongFlagPrefix(s string) string {
	if IsFlagStyle(s) {
		return s
	}
	return longFlagPrefix + s
}

// AddShortFlagPrefix prepends "-" unless s is already flag styled in any form.
func AddShortFlagPrefix(s string) string {
	if IsFlagStyle(s) {
		return s
	}
	return shortFlagPrefix + s
}

// RemoveFlagPrefix strips exactly one leading "--" or "-".
func RemoveFlagPrefix(s string) string {
	switch {
	case IsLongFlagStyle(s):
		return s[len(longFlagPrefix):]
	case IsShortFlagStyle(s):
		return s[len(shortFlagPrefix):]
	default:
		return s
	}
}

// PlaceholderArgumentString turns a label into its usage placeholder,
// e.g. "--output-file" becomes "OUTPUT_FILE".
func PlaceholderArgumentString(s string) string {
	return strings.ToUpper(strings.ReplaceAll(RemoveFlagPrefix(s), "-", "_"))
}

// IsValidArgumentName checks a label after removing its flag prefix (if any).
// The remainder must be non-empty, start with a letter or '_', and contain only
// letters, digits, '_' and '-'.
func IsValidArgumentName(s string) bool {
	name := RemoveFlagPrefix(s)
	if name == "" {
		return false
	}

	for i, r := range name {
		if unicode.IsSpace(r) {
			return false
		}
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
