package argparse

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// Result is the immutable outcome of a successful parse: every label of every
// matched declaration mapped to its converted value.
type Result struct {
	values map[string]Value
}

func newResult(values map[string]Value) *Result {
	if values == nil {
		values = map[string]Value{}
	}
	return &Result{values: values}
}

// Value returns the value parsed for arg. It reports false when nothing was
// stored under the argument's label or the stored value has a different kind.
func (r *Result) Value(arg *Argument) (Value, bool) {
	v, ok := r.values[arg.Label()]
	if !ok || v.Kind() != arg.Kind() {
		return Value{}, false
	}
	return v, true
}

// Get is the typed form of Result.Value.
func Get[T Parsable](r *Result, arg *Argument) (T, bool) {
	v, ok := r.Value(arg)
	if !ok {
		var zero T
		return zero, false
	}
	return As[T](v)
}

// Lookup returns the value stored under label. The label may be given as
// declared ("--count", "-c") or without its flag prefix ("count").
func (r *Result) Lookup(label string) (Value, bool) {
	if v, ok := r.values[label]; ok {
		return v, true
	}
	if IsFlagStyle(label) {
		return Value{}, false
	}
	if v, ok := r.values[longFlagPrefix+label]; ok {
		return v, true
	}
	v, ok := r.values[shortFlagPrefix+label]
	return v, ok
}

// typed looks label up and panics with a *UsageError when the stored value
// is not of kind k. A missing label is not an error.
func (r *Result) typed(label string, k Kind) (Value, bool) {
	v, ok := r.Lookup(label)
	if !ok {
		return Value{}, false
	}
	if v.Kind() != k {
		panic(&UsageError{Message: fmt.Sprintf(
			"value for label '%s' has actual type '%s' and not requested type '%s'", label, v.Kind(), k)})
	}
	return v, true
}

// Int returns the integer stored under label. It panics with a *UsageError if
// the label holds a value of another type.
func (r *Result) Int(label string) (int64, bool) {
	v, ok := r.typed(label, KindInt)
	return v.i, ok
}

// Float returns the float stored under label; see Int for the panic rule.
func (r *Result) Float(label string) (float64, bool) {
	v, ok := r.typed(label, KindFloat)
	return v.f, ok
}

// Bool returns the boolean stored under label; see Int for the panic rule.
func (r *Result) Bool(label string) (bool, bool) {
	v, ok := r.typed(label, KindBool)
	return v.b, ok
}

// String returns the text stored under label; see Int for the panic rule.
func (r *Result) String(label string) (string, bool) {
	v, ok := r.typed(label, KindString)
	return v.s, ok
}

func (r *Result) Duration(label string) (time.Duration, bool) {
	v, ok := r.typed(label, KindDuration)
	return v.d, ok
}

// Labels returns the stored labels in lexical order.
func (r *Result) Labels() []string {
	return slices.Sorted(maps.Keys(r.values))
}

func (r *Result) Len() int { return len(r.values) }

// Map returns a copy of the label to value mapping.
func (r *Result) Map() map[string]Value {
	return maps.Clone(r.values)
}
