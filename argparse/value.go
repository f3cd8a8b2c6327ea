package argparse

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies which type a Value holds
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindDuration
)

// String returns the type name used in usage placeholders (e.g. "count<Int>").
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindDuration:
		return "Duration"
	case KindInvalid:
		return "Invalid"
	default:
		return "Invalid"
	}
}

// Parsable is the set of Go types an argument can be declared with.
type Parsable interface {
	int64 | float64 | bool | string | time.Duration
}

// Value is a tagged union over the supported argument types. The zero Value
// has KindInvalid and is never produced by a successful conversion.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	d    time.Duration
}

func IntValue(v int64) Value              { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value          { return Value{kind: KindFloat, f: v} }
func BoolValue(v bool) Value              { return Value{kind: KindBool, b: v} }
func StringValue(v string) Value          { return Value{kind: KindString, s: v} }
func DurationValue(v time.Duration) Value { return Value{kind: KindDuration, d: v} }

// Kind returns the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload; ok is false when v is not KindInt.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the float payload; ok is false when v is not KindFloat.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Bool returns the boolean payload; ok is false when v is not KindBool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Str returns the text payload; ok is false when v is not KindString.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Duration returns the duration payload; ok is false when v is not KindDuration.
func (v Value) Duration() (time.Duration, bool) { return v.d, v.kind == KindDuration }

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		// NaN is equal to itself here
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindDuration:
		return v.d == o.d
	case KindInvalid:
		return true
	default:
		return false
	}
}

// String renders the value as text that converts back to an equal Value.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindDuration:
		return v.d.String()
	case KindInvalid:
		return "<invalid>"
	default:
		return "<invalid>"
	}
}

// Converter turns a raw token into a typed Value. It never panics; a false
// result means the token does not represent a value of the target kind.
type Converter func(token string) (Value, bool)

func parseInt(token string) (Value, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return IntValue(n), true
}

func parseFloat(token string) (Value, bool) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Value{}, false
	}
	return FloatValue(f), true
}

func parseString(token string) (Value, bool) {
	return StringValue(token), true
}

// parseBool accepts exactly 1/true/TRUE and 0/false/FALSE.
func parseBool(token string) (Value, bool) {
	switch token {
	case "1", "true", "TRUE":
		return BoolValue(true), true
	case "0", "false", "FALSE":
		return BoolValue(false), true
	default:
		return Value{}, false
	}
}

func parseDuration(token string) (Value, bool) {
	d, err := time.ParseDuration(token)
	if err != nil {
		return Value{}, false
	}
	return DurationValue(d), true
}

// ConverterFor returns the converter for a kind, or nil for KindInvalid.
func ConverterFor(k Kind) Converter {
	switch k {
	case KindInt:
		return parseInt
	case KindFloat:
		return parseFloat
	case KindBool:
		return parseBool
	case KindString:
		return parseString
	case KindDuration:
		return parseDuration
	case KindInvalid:
		return nil
	default:
		return nil
	}
}

// KindOf returns the Kind matching the type parameter.
func KindOf[T Parsable]() Kind {
	var zero T
	switch any(zero).(type) {
	case time.Duration:
		return KindDuration
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case bool:
		return KindBool
	case string:
		return KindString
	default:
		return KindInvalid
	}
}

// ValueOf wraps a Go value into its tagged Value.
func ValueOf[T Parsable](v T) Value {
	switch x := any(v).(type) {
	case time.Duration:
		return DurationValue(x)
	case int64:
		return IntValue(x)
	case float64:
		return FloatValue(x)
	case bool:
		return BoolValue(x)
	case string:
		return StringValue(x)
	default:
		return Value{}
	}
}

// As extracts a Go value from v. ok is false when v holds a different kind.
func As[T Parsable](v Value) (T, bool) {
	var zero T
	if v.kind != KindOf[T]() {
		return zero, false
	}
	var out any
	switch v.kind {
	case KindInt:
		out = v.i
	case KindFloat:
		out = v.f
	case KindBool:
		out = v.b
	case KindString:
		out = v.s
	case KindDuration:
		out = v.d
	case KindInvalid:
		return zero, false
	default:
		return zero, false
	}
	return out.(T), true
}
