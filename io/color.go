package argio

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec is a color in one of three spaces: basic (16), indexed (256) or truecolor (RGB)
type ColorSpec struct {
	space   int // 1=basic, 2=indexed, 3=truecolor
	index   int
	r, g, b uint8
}

// Basic colors (0-7 normal, 8-15 bright)
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8) // gray
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{space: 1, index: i} }

// Indexed returns a 256-color palette spec (0-255).
func Indexed(i int) ColorSpec { return ColorSpec{space: 2, index: i} }

// Truecolor returns a 24-bit RGB spec.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{space: 3, r: r, g: g, b: b} }

// code renders the SGR parameter for c, or "" when the terminal level can't show it.
func (c ColorSpec) code(level int) string {
	switch c.space {
	case 1:
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(30 + idx)
		}
		return strconv.Itoa(90 + idx - 8)
	case 2:
		if level < 2 {
			return ""
		}
		return "38;5;" + strconv.Itoa(c.index)
	case 3:
		if level < 3 {
			return ""
		}
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		return ""
	}
}

// Style is a fluent builder for a foreground color plus attributes
type Style struct {
	fg              *ColorSpec
	bold, underline bool
}

func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Underline() *Style     { s.underline = true; return s }

// Sprint styles text when m supports color and returns it unchanged otherwise.
func (s *Style) Sprint(m *IOManager, text string) string {
	level := m.ColorLevel()
	if level == 0 {
		return text
	}
	codes := make([]string, 0, 3)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.fg != nil {
		if c := s.fg.code(level); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// Theme maps the parts of parser output to colors
type Theme struct {
	Heading ColorSpec // "usage:", section titles
	Error   ColorSpec
	Warning ColorSpec
	Info    ColorSpec
	Debug   ColorSpec
	Muted   ColorSpec
}

// DefaultTheme picks 16-color or truecolor variants from m's color level.
func DefaultTheme(m *IOManager) Theme {
	if m.ColorLevel() >= 3 {
		return Theme{
			Heading: Truecolor(92, 148, 252),
			Error:   Truecolor(255, 85, 85),
			Warning: Truecolor(255, 184, 108),
			Info:    Truecolor(139, 233, 253),
			Debug:   Truecolor(189, 147, 249),
			Muted:   Truecolor(128, 128, 128),
		}
	}
	return Theme{
		Heading: BrightBlue,
		Error:   BrightRed,
		Warning: BrightYellow,
		Info:    BrightCyan,
		Debug:   BrightMagenta,
		Muted:   BrightBlack,
	}
}
