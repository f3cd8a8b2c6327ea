//nolint:testpackage // using package name 'argparse' to access unexported fields for testing
package argparse

import (
	"bytes"
	"strings"
	"testing"

	argio "github.com/dzonerzy/go-argparse/io"
)

// detail mirrors the layout of a description line inside a section.
func detail(first, help string) string {
	if len(first) < firstColumnWidth {
		return "\t" + first + strings.Repeat(" ", firstColumnWidth-len(first)) + help
	}
	return "\t" + first + " " + help
}

var helpDetail = detail("--help, -h", "show this help message and exit")

func TestArgument_Description(t *testing.T) {
	tests := []struct {
		name string
		arg  *Argument
		want string
	}{
		{
			name: "positional",
			arg:  Positional[int64]("foo").Usage("help help").MustBuild(),
			want: "foo<Int>                      help help",
		},
		{
			name: "string positional has no type",
			arg:  Positional[string]("src").Usage("h").MustBuild(),
			want: "src                           h",
		},
		{
			name: "optional with short label",
			arg:  Optional[int64]("--boo").Short("-b").Usage("help help").MustBuild(),
			want: "--boo, -b BOO<Int>            help help",
		},
		{
			name: "flag",
			arg:  Flag("--boo").Short("-b").Usage("help help").MustBuild(),
			want: "--boo, -b                     help help",
		},
		{
			name: "long first column",
			arg:  Optional[int64]("--a-very-long-label-for-this").Usage("x").MustBuild(),
			want: "--a-very-long-label-for-this A_VERY_LONG_LABEL_FOR_THIS<Int> x",
		},
		{
			name: "no help",
			arg:  Optional[float64]("--ratio").MustBuild(),
			want: "--ratio RATIO<Float>",
		},
		{
			name: "choices",
			arg:  Optional[int64]("--foo").Usage("This is the help").Choices(34, 45, 675).MustBuild(),
			want: "--foo FOO<Int>                This is the help\n\t\tPossible values: '34' | '45' | '675'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arg.Description(); got != tt.want {
				t.Errorf("Description() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestArgument_UsageString(t *testing.T) {
	tests := map[string]*Argument{
		"[-c COUNT<Int>]": Optional[int64]("--count").Short("-c").MustBuild(),
		"[--source SOURCE]": Optional[string]("--source").MustBuild(),
		"[-q]":              Flag("--quiet").Short("-q").MustBuild(),
		"file":              Positional[string]("file").MustBuild(),
		"n<Int>":            Positional[int64]("n").MustBuild(),
		"[-h]":              DefaultHelp(),
	}
	for want, arg := range tests {
		if got := arg.UsageString(); got != want {
			t.Errorf("UsageString() = %q, want %q", got, want)
		}
	}
}

func TestParser_Description(t *testing.T) {
	t.Setenv("COLUMNS", "120")

	t.Run("no arguments", func(t *testing.T) {
		p, _ := newTestParser(t, nil, WithSummary("A test script"))
		want := strings.Join([]string{
			"usage: prog [-h]",
			"",
			"A test script",
			"",
			"optional arguments:",
			helpDetail,
			"",
		}, "\n")
		if got := p.Description(); got != want {
			t.Errorf("Description() =\n%q\nwant\n%q", got, want)
		}
		if got := p.ShortDescription(); got != "usage: prog [-h]" {
			t.Errorf("ShortDescription() = %q", got)
		}
	})

	t.Run("positional arguments", func(t *testing.T) {
		p, _ := newTestParser(t, nil, WithSummary("A test script"))
		p.MustAddArgument(Positional[string]("source").Usage("An input file").MustBuild())
		p.MustAddArgument(Positional[int64]("count").Usage("How many times").MustBuild())

		want := strings.Join([]string{
			"usage: prog [-h] source count<Int>",
			"",
			"A test script",
			"",
			"positional arguments:",
			detail("count<Int>", "How many times"),
			detail("source", "An input file"),
			"",
			"optional arguments:",
			helpDetail,
			"",
		}, "\n")
		if got := p.Description(); got != want {
			t.Errorf("Description() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("optional arguments", func(t *testing.T) {
		p, _ := newTestParser(t, []*Argument{
			Optional[string]("--source").Usage("An input file").MustBuild(),
			Optional[int64]("--count").Usage("How many times").MustBuild(),
		}, WithSummary("A test script"))

		want := strings.Join([]string{
			"usage: prog [-h] [--source SOURCE] [--count COUNT<Int>]",
			"",
			"A test script",
			"",
			"optional arguments:",
			detail("--count COUNT<Int>", "How many times"),
			helpDetail,
			detail("--source SOURCE", "An input file"),
			"",
		}, "\n")
		if got := p.Description(); got != want {
			t.Errorf("Description() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("mixed without summary", func(t *testing.T) {
		p, _ := newTestParser(t, []*Argument{
			Positional[string]("file").Usage("A file").MustBuild(),
			Optional[string]("--source").Usage("An input file").MustBuild(),
		})

		want := strings.Join([]string{
			"usage: prog [-h] [--source SOURCE] file",
			"",
			"positional arguments:",
			detail("file", "A file"),
			"",
			"optional arguments:",
			helpDetail,
			detail("--source SOURCE", "An input file"),
			"",
		}, "\n")
		if got := p.Description(); got != want {
			t.Errorf("Description() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("declaration order is kept", func(t *testing.T) {
		p, _ := newTestParser(t, []*Argument{
			Positional[string]("b").MustBuild(),
			Positional[string]("a").MustBuild(),
		})
		if got := p.ShortDescription(); got != "usage: prog [-h] b a" {
			t.Errorf("ShortDescription() = %q", got)
		}
	})
}

func TestParser_DescriptionWrapsSummary(t *testing.T) {
	t.Setenv("COLUMNS", "20")
	p, _ := newTestParser(t, nil, WithSummary("one two three four five six"))
	if !strings.Contains(p.Description(), "\none two three four\nfive six\n") {
		t.Errorf("summary not wrapped: %q", p.Description())
	}
}

func TestParser_HeadingsAreStyled(t *testing.T) {
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm")
	t.Setenv("COLUMNS", "120")
	m := argio.New().WithOut(&bytes.Buffer{}).WithErr(&bytes.Buffer{}).WithColor(argio.ColorAlways)
	p, _ := newTestParser(t, []*Argument{Positional[string]("file").MustBuild()}, WithIO(m))

	bold := func(s string) string { return "\x1b[1;94m" + s + "\x1b[0m" }
	if got, want := p.ShortDescription(), bold("usage:")+" prog [-h] file"; got != want {
		t.Errorf("ShortDescription() = %q, want %q", got, want)
	}
	desc := p.Description()
	for _, title := range []string{"positional arguments:", "optional arguments:"} {
		if !strings.Contains(desc, "\n"+bold(title)+"\n") {
			t.Errorf("section %q not styled in %q", title, desc)
		}
	}
}
