package argparse

import (
	"slices"
	"strings"

	argio "github.com/dzonerzy/go-argparse/io"
	"github.com/mitchellh/go-wordwrap"
)

// firstColumnWidth is the width the label column is padded to in descriptions
const firstColumnWidth = 30

// placeholder returns " LABEL" for arguments followed by a value.
func (a *Argument) placeholder() string {
	if a.style.RequiresAdditionalValue() {
		return " " + PlaceholderArgumentString(a.label)
	}
	return ""
}

// typeSpec returns "<Kind>" for valued arguments of a non-text kind.
func (a *Argument) typeSpec() string {
	if a.kind == KindString || !a.style.RequiresValue() {
		return ""
	}
	return "<" + a.kind.String() + ">"
}

// UsageString is the compact form shown in the usage line, e.g. "-c COUNT<Int>".
func (a *Argument) UsageString() string {
	s := a.CompactLabel() + a.placeholder() + a.typeSpec()
	if a.IsOptional() {
		return "[" + s + "]"
	}
	return s
}

// Description renders the detail line, e.g.
//
//	--count, -c COUNT<Int>        How many times
//
// followed by the allowed values when the argument has choices.
func (a *Argument) Description() string {
	var b strings.Builder
	b.WriteString(a.label)
	if a.shortLabel != "" {
		b.WriteString(", " + a.shortLabel)
	}
	b.WriteString(a.placeholder() + a.typeSpec())

	if a.help != "" {
		if n := len([]rune(b.String())); n < firstColumnWidth {
			b.WriteString(strings.Repeat(" ", firstColumnWidth-n))
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(a.help)
	}
	if len(a.choices) > 0 {
		b.WriteString("\n\t\tPossible values: " + quoteValues(a.choices, " | "))
	}
	return b.String()
}

// ShortDescription returns the one-line usage, e.g.
// "usage: prog [-h] [--count COUNT<Int>] file".
// "usage:" is styled with the theme's heading color when the output supports it.
func (p *Parser) ShortDescription() string {
	parts := []string{p.heading("usage:"), p.name}
	for _, arg := range p.declarations() {
		if arg.IsOptional() {
			parts = append(parts, arg.UsageString())
		}
	}
	for _, arg := range p.args.filter(StylePositional) {
		parts = append(parts, arg.UsageString())
	}
	return strings.Join(parts, " ")
}

func (p *Parser) heading(text string) string {
	return argio.NewStyle().Bold().Fg(argio.DefaultTheme(p.io).Heading).Sprint(p.io, text)
}

// Description returns the full help text: usage line, summary and one
// section each for positional and optional arguments, sorted by label.
func (p *Parser) Description() string {
	var b strings.Builder
	b.WriteString(p.ShortDescription() + "\n")
	if p.summary != "" {
		b.WriteString("\n" + wordwrap.WrapString(p.summary, uint(p.io.Width())) + "\n")
	}

	section := func(title string, args []*Argument) {
		if len(args) == 0 {
			return
		}
		slices.SortStableFunc(args, func(x, y *Argument) int { return strings.Compare(x.label, y.label) })
		b.WriteString("\n" + p.heading(title+" arguments:"))
		for _, arg := range args {
			b.WriteString("\n\t" + arg.Description())
		}
		b.WriteString("\n")
	}

	var positionals, optionals []*Argument
	for _, arg := range p.declarations() {
		if arg.IsOptional() {
			optionals = append(optionals, arg)
		} else {
			positionals = append(positionals, arg)
		}
	}
	section("positional", positionals)
	section("optional", optionals)
	return b.String()
}
