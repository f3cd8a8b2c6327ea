// Package middleware wraps parser actions with cross-cutting behaviour:
// panic recovery, execution logging and post-parse validation.
//
//	chain := middleware.Chain(middleware.Recovery(), middleware.Logger(middleware.WithLogger(l)))
//	parser.RunAndExit(chain.Apply(run))
package middleware

import (
	"fmt"

	"github.com/dzonerzy/go-argparse/argparse"
	argio "github.com/dzonerzy/go-argparse/io"
)

// ActionFunc is the action signature accepted by argparse.Parser.RunWithArgs.
type ActionFunc func(res *argparse.Result) error

// Middleware defines the middleware function signature
type Middleware func(next ActionFunc) ActionFunc

// MiddlewareChain represents a chain of middleware functions
type MiddlewareChain []Middleware

// Apply applies the middleware chain to an ActionFunc. Middleware are wrapped
// in the order they appear in the chain, so the first one runs outermost.
func (chain MiddlewareChain) Apply(action ActionFunc) ActionFunc {
	for i := len(chain) - 1; i >= 0; i-- {
		action = chain[i](action)
	}
	return action
}

// Use returns a new chain with the provided middleware appended.
func (chain MiddlewareChain) Use(middleware ...Middleware) MiddlewareChain {
	return append(chain[:len(chain):len(chain)], middleware...)
}

// Chain creates a new middleware chain from the provided middleware, preserving
// order.
func Chain(middleware ...Middleware) MiddlewareChain {
	return MiddlewareChain(middleware)
}

// ValidationError represents a failed post-parse check on a label.
type ValidationError struct {
	Label   string
	Value   any
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// RecoveryError represents a panic recovered from an action
type RecoveryError struct {
	Panic any
	Stack []byte
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("action panicked: %v", e.Panic)
}

// Config contains configuration for middleware behavior
type Config struct {
	Logger        *argio.Logger
	PrintStack    bool
	StackSize     int
	IncludeValues bool
}

type Option func(config *Config)

func DefaultConfig() *Config {
	return &Config{
		PrintStack:    true,
		StackSize:     4096,
		IncludeValues: true,
	}
}

func newConfig(options []Option) *Config {
	config := DefaultConfig()
	for _, option := range options {
		option(config)
	}
	return config
}

// WithLogger sets the logger used by Logger and Recovery. Without one they
// stay silent.
func WithLogger(l *argio.Logger) Option {
	return func(config *Config) {
		config.Logger = l
	}
}

func WithStackTrace(enabled bool) Option {
	return func(config *Config) {
		config.PrintStack = enabled
	}
}

// WithValues controls whether Logger prints the parsed label values.
func WithValues(enabled bool) Option {
	return func(config *Config) {
		config.IncludeValues = enabled
	}
}
