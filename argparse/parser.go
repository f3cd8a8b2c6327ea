package argparse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	argio "github.com/dzonerzy/go-argparse/io"
)

// Parser matches command-line tokens against a set of argument declarations.
// Configure it at startup; after that Parse may be called concurrently.
type Parser struct {
	name    string
	summary string
	args    ArgumentSet
	help    *Argument
	index   *argumentIndex

	helpHandler  func()
	errorHandler func(error)

	io        *argio.IOManager
	log       *argio.Logger
	exit      func(int)
	exitCodes *ExitCodeManager
}

// Option configures a Parser at construction.
type Option func(*Parser)

// WithSummary sets the text shown under the usage line in the full description.
func WithSummary(summary string) Option {
	return func(p *Parser) { p.summary = summary }
}

// WithHelpArgument replaces the default "--help, -h" argument.
func WithHelpArgument(help *Argument) Option {
	return func(p *Parser) {
		if help != nil {
			p.help = help
		}
	}
}

// WithHelpHandler sets the callback run when the first token asks for help,
// instead of printing the description and exiting.
func WithHelpHandler(fn func()) Option {
	return func(p *Parser) { p.helpHandler = fn }
}

// WithErrorHandler sets the callback ParseOrExit and Run use for parse
// errors, instead of printing the usage and exiting.
func WithErrorHandler(fn func(error)) Option {
	return func(p *Parser) { p.errorHandler = fn }
}

func WithIO(m *argio.IOManager) Option {
	return func(p *Parser) {
		if m != nil {
			p.io = m
		}
	}
}

// WithLogger sets the logger for fatal errors and, at debug level, a trace
// of every parsing decision.
func WithLogger(l *argio.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithExitFunc replaces os.Exit, mostly for tests.
func WithExitFunc(fn func(int)) Option {
	return func(p *Parser) {
		if fn != nil {
			p.exit = fn
		}
	}
}

// NewParser returns a parser expecting args, in order. name is the program
// name shown in the usage; when empty the base name of os.Args[0] is used.
// It fails with a *DeclarationError if two declarations share a label.
func NewParser(name string, args []*Argument, opts ...Option) (*Parser, error) {
	if name == "" && len(os.Args) > 0 {
		name = filepath.Base(os.Args[0])
	}
	p := &Parser{
		name:      name,
		help:      DefaultHelp(),
		exit:      os.Exit,
		exitCodes: newExitCodeManager(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.io == nil {
		p.io = argio.New()
	}
	if p.log == nil {
		p.log = argio.NewLogger(p.io).WithFormat(argio.LogFormatPlain).WithName(p.name)
	}

	for _, arg := range args {
		if arg == nil {
			return nil, &UsageError{Message: "nil argument declaration"}
		}
	}
	p.args = slices.Clone(args)
	if err := p.reindex(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNewParser is like NewParser but panics with a *UsageError on failure.
func MustNewParser(name string, args []*Argument, opts ...Option) *Parser {
	p, err := NewParser(name, args, opts...)
	if err != nil {
		misuse(err)
	}
	return p
}

// AddArgument appends a declaration. On a duplicated label the parser is left
// unchanged and a *DeclarationError is returned.
func (p *Parser) AddArgument(arg *Argument) error {
	if arg == nil {
		return &UsageError{Message: "nil argument declaration"}
	}
	p.args = append(p.args, arg)
	if err := p.reindex(); err != nil {
		p.args = p.args[:len(p.args)-1]
		return err
	}
	return nil
}

// MustAddArgument is like AddArgument but panics with a *UsageError on failure.
func (p *Parser) MustAddArgument(arg *Argument) *Parser {
	if err := p.AddArgument(arg); err != nil {
		misuse(err)
	}
	return p
}

// reindex validates the declarations, help included, and rebuilds the lookup.
func (p *Parser) reindex() error {
	all := p.declarations()
	if err := all.Validate(); err != nil {
		return err
	}
	p.index = newArgumentIndex(all)
	return nil
}

// declarations returns the help argument followed by the declared ones.
func (p *Parser) declarations() ArgumentSet {
	return append(ArgumentSet{p.help}, p.args...)
}

func (p *Parser) Name() string { return p.name }

// Arguments returns the declarations in order, without the help argument.
func (p *Parser) Arguments() []*Argument { return slices.Clone(p.args) }

func (p *Parser) HelpArgument() *Argument { return p.help }

// ExitCodes returns the exit-code mapping used by ParseOrExit and Run.
func (p *Parser) ExitCodes() *ExitCodeManager { return p.exitCodes }

func (p *Parser) IO() *argio.IOManager { return p.io }

// isHelpRequest reports whether the first token is a label of the help argument.
func (p *Parser) isHelpRequest(tokens []string) bool {
	return len(tokens) > 0 && slices.Contains(p.help.Labels(), tokens[0])
}

// Parse matches tokens against the declarations. Tokens must not include the
// program name.
//
// If the first token is a help label nothing is parsed: the help handler, if
// any, is called and ErrHelpRequested is returned with an empty result.
// Otherwise the error, if any, is a *ParseError.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	if p.isHelpRequest(tokens) {
		if p.helpHandler != nil {
			p.helpHandler()
		}
		return newResult(nil), ErrHelpRequested
	}

	values, err := parseTokens(p.index, tokens, p.log)
	if err != nil {
		return newResult(nil), err
	}
	return newResult(values), nil
}

// ParseOrExit is Parse with the default handlers: a help request prints the
// description and exits with 0, a parse error prints the usage and the error
// and exits with 1. A custom error handler is called instead and an empty
// result returned.
func (p *Parser) ParseOrExit(tokens []string) *Result {
	res, err := p.Parse(tokens)
	switch {
	case err == nil:
		return res
	case errors.Is(err, ErrHelpRequested):
		if p.helpHandler == nil {
			p.printHelp()
			p.exit(p.exitCodes.Resolve(err))
		}
	case p.errorHandler != nil:
		p.errorHandler(err)
	default:
		p.printError(err)
		p.exit(p.exitCodes.Resolve(err))
	}
	return newResult(nil)
}

// ParseArgs calls ParseOrExit with the process arguments.
func (p *Parser) ParseArgs() *Result {
	return p.ParseOrExit(os.Args[1:])
}

// RunWithArgs parses tokens, calls action with the result and returns the
// exit code for the outcome. Help and parse errors are handled as in
// ParseOrExit, without exiting. A *UsageError panic raised inside action,
// such as a typed lookup of the wrong type, is reported as fatal and mapped
// to the misusage code.
func (p *Parser) RunWithArgs(tokens []string, action func(*Result) error) (code int) {
	defer func() {
		if r := recover(); r != nil {
			uerr, ok := r.(*UsageError)
			if !ok {
				panic(r)
			}
			p.log.Error("Fatal argument parser usage error: %s", uerr.Message)
			code = p.exitCodes.Resolve(uerr)
		}
	}()

	res, err := p.Parse(tokens)
	switch {
	case err == nil:
	case errors.Is(err, ErrHelpRequested):
		if p.helpHandler == nil {
			p.printHelp()
		}
		return p.exitCodes.Resolve(err)
	case p.errorHandler != nil:
		p.errorHandler(err)
		return p.exitCodes.Resolve(err)
	default:
		p.printError(err)
		return p.exitCodes.Resolve(err)
	}

	if action == nil {
		return p.exitCodes.Resolve(nil)
	}
	if err := action(res); err != nil {
		p.log.Error("%v", err)
		return p.exitCodes.Resolve(err)
	}
	return p.exitCodes.Resolve(nil)
}

// Run calls RunWithArgs with the process arguments.
func (p *Parser) Run(action func(*Result) error) int {
	return p.RunWithArgs(os.Args[1:], action)
}

// RunAndExit calls Run and exits with its code.
func (p *Parser) RunAndExit(action func(*Result) error) {
	p.exit(p.Run(action))
}

func (p *Parser) printHelp() {
	_ = p.io.EnableVirtualTerminal()
	p.io.Printf("%s\n", p.Description())
}

// printError writes the usage line and "prog: error: msg" to the error stream.
func (p *Parser) printError(err error) {
	_ = p.io.EnableVirtualTerminal()
	theme := argio.DefaultTheme(p.io)
	errLabel := argio.NewStyle().Bold().Fg(theme.Error).Sprint(p.io, "error:")
	p.io.Eprintf("%s\n", p.ShortDescription())
	p.io.Eprintf("%s: %s %s\n", p.name, errLabel, err)

	var perr *ParseError
	if errors.As(err, &perr) && perr.Suggestion != "" {
		hint := argio.NewStyle().Fg(theme.Muted).Sprint(p.io, fmt.Sprintf("Did you mean '%s'?", perr.Suggestion))
		p.io.Eprintf("%s\n", hint)
	}
}
