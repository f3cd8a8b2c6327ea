package argparse

import (
	argio "github.com/dzonerzy/go-argparse/io"
	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// suggestionDistance is the maximum edit distance for "Did you mean" hints
const suggestionDistance = 2

// argumentIndex is the partition of a declaration set the state machine runs
// against. It is rebuilt whenever the set changes and is read-only afterwards.
type argumentIndex struct {
	lookup      map[string]*Argument // every label of every flag-like declaration
	labels      []string             // keys of lookup in declaration order
	flags       []*Argument
	optionals   []*Argument
	positionals []*Argument
}

func newArgumentIndex(args []*Argument) *argumentIndex {
	idx := &argumentIndex{lookup: make(map[string]*Argument, len(args)*2)}
	for _, arg := range args {
		switch arg.style {
		case StylePositional:
			idx.positionals = append(idx.positionals, arg)
			continue
		case StyleFlag:
			idx.flags = append(idx.flags, arg)
		case StyleOptional:
			idx.optionals = append(idx.optionals, arg)
		case StyleHelp:
		}
		for _, label := range arg.Labels() {
			idx.lookup[label] = arg
			idx.labels = append(idx.labels, label)
		}
	}
	return idx
}

// parsingState is the per-call state of one parse. It is never shared between
// calls; instances are recycled through statePool.
type parsingState struct {
	index    *argumentIndex
	seen     map[*Argument]struct{} // flags and optionals observed so far
	next     int                    // first unconsumed positional
	values   map[string]Value
	tokens   []string
	position int
	log      *argio.Logger
}

var statePool = pool.NewPoolWithReset(
	func() *parsingState {
		return &parsingState{seen: make(map[*Argument]struct{}, 8)}
	},
	func(s *parsingState) {
		pool.ClearMap(s.seen)
		s.index = nil
		s.next = 0
		s.values = nil
		s.tokens = nil
		s.position = 0
		s.log = nil
	},
)

// parseTokens runs the state machine over tokens and returns the label to
// value mapping. The returned map is owned by the caller.
func parseTokens(index *argumentIndex, tokens []string, log *argio.Logger) (map[string]Value, error) {
	s := statePool.Get()
	defer statePool.Put(s)

	s.index = index
	s.tokens = tokens
	s.log = log
	s.values = make(map[string]Value, len(index.lookup)+len(index.positionals))

	err := s.run()
	values := s.values
	s.values, s.tokens = nil, nil
	if err != nil {
		return nil, err
	}
	return values, nil
}

// run consumes tokens left to right, with one token of lookahead for the
// value of an optional argument.
func (s *parsingState) run() error {
	for s.position < len(s.tokens) {
		token := s.tokens[s.position]

		var err error
		if arg, ok := s.index.lookup[token]; ok {
			err = s.consumeLabelled(arg, token)
		} else {
			err = s.consumePositional(token)
		}
		if err != nil {
			return err
		}

		s.position++
	}
	return s.finish()
}

func (s *parsingState) consumeLabelled(arg *Argument, token string) error {
	s.seen[arg] = struct{}{}

	if !arg.style.RequiresAdditionalValue() {
		s.trace("%s: set", token)
		s.record(arg, BoolValue(true))
		return nil
	}

	// An optional's value must never look like the next flag
	s.position++
	if s.position >= len(s.tokens) || IsFlagStyle(s.tokens[s.position]) {
		return &ParseError{Type: ErrorTypeParameterExpectedAfterToken, Argument: arg, Token: token}
	}

	value, err := s.convert(arg, s.tokens[s.position])
	if err != nil {
		return err
	}
	s.trace("%s: %s", token, value)
	s.record(arg, value)
	return nil
}

// consumePositional binds token to the first unconsumed positional. Binding
// is strictly by order: conversion errors are attributed to that declaration.
func (s *parsingState) consumePositional(token string) error {
	if s.next >= len(s.index.positionals) {
		perr := &ParseError{Type: ErrorTypeUnexpectedPositionalArgument, Token: token}
		if IsFlagStyle(token) {
			perr.Suggestion = fuzzy.SuggestLabel(token, s.index.labels, suggestionDistance)
		}
		return perr
	}

	arg := s.index.positionals[s.next]
	s.next++

	value, err := s.convert(arg, token)
	if err != nil {
		return err
	}
	s.trace("%s: %s", arg.label, value)
	s.record(arg, value)
	return nil
}

// convert applies the declaration's converter, then its choices.
func (s *parsingState) convert(arg *Argument, token string) (Value, error) {
	value, ok := arg.Convert(token)
	if !ok {
		return Value{}, &ParseError{Type: ErrorTypeInvalidType, Argument: arg, Token: token}
	}
	if !arg.allows(value) {
		return Value{}, &ParseError{Type: ErrorTypeNotInChoices, Argument: arg, Token: token, Choices: arg.Choices()}
	}
	return value, nil
}

// record stores value under every label of arg.
func (s *parsingState) record(arg *Argument, value Value) {
	for _, label := range arg.Labels() {
		s.values[label] = value
	}
}

// finish resolves everything the input did not mention.
func (s *parsingState) finish() error {
	if s.next < len(s.index.positionals) {
		return &ParseError{Type: ErrorTypeTooFewArguments}
	}

	for _, arg := range s.index.flags {
		if _, ok := s.seen[arg]; !ok {
			s.record(arg, BoolValue(false))
		}
	}
	for _, arg := range s.index.optionals {
		if _, ok := s.seen[arg]; ok {
			continue
		}
		if def, ok := arg.def.Value(); ok {
			s.trace("%s: default %s", arg.label, def)
			s.record(arg, def)
		}
	}
	return nil
}

func (s *parsingState) trace(format string, args ...any) {
	if s.log.Enabled(argio.LevelDebug) {
		s.log.Debug(format, args...)
	}
}
