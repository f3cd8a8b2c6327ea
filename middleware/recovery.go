package middleware

import (
	"runtime"

	"github.com/dzonerzy/go-argparse/argparse"
)

// Recovery creates a middleware that turns panics raised by the action into
// a *RecoveryError. A *argparse.UsageError keeps propagating so the parser
// can report it as a misuse of the library.
func Recovery(options ...Option) Middleware {
	config := newConfig(options)

	return func(next ActionFunc) ActionFunc {
		return func(res *argparse.Result) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if uerr, ok := r.(*argparse.UsageError); ok {
					panic(uerr)
				}

				var stack []byte
				if config.PrintStack {
					stack = make([]byte, config.StackSize)
					stack = stack[:runtime.Stack(stack, false)]
					config.Logger.Error("panic: %v\nstack trace:\n%s", r, stack)
				}
				err = &RecoveryError{Panic: r, Stack: stack}
			}()

			return next(res)
		}
	}
}

// RecoveryWithHandler creates a recovery middleware with a custom panic handler
func RecoveryWithHandler(handler func(panicVal any, stack []byte) error, options ...Option) Middleware {
	config := newConfig(options)

	return func(next ActionFunc) ActionFunc {
		return func(res *argparse.Result) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var stack []byte
					if config.PrintStack {
						stack = make([]byte, config.StackSize)
						stack = stack[:runtime.Stack(stack, false)]
					}
					err = handler(r, stack)
				}
			}()

			return next(res)
		}
	}
}

// RecoveryToError converts panics to errors without capturing a stack trace
func RecoveryToError() Middleware {
	return Recovery(WithStackTrace(false))
}
