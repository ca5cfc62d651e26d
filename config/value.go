// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime kind of a raw value returned by a [Provider].
type Kind int

const (
	KindText Kind = iota
	KindBool
	KindInt
	KindOther
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return "other"
	}
}

// Value is a raw configuration value as resolved from a [Provider].
// The zero Value is the empty text value.
type Value struct {
	kind  Kind
	text  string
	b     bool
	n     int64
	other any
}

// Text returns a Value holding the given text.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool returns a Value holding the given bool.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a Value holding the given integer.
func Int(n int64) Value {
	return Value{kind: KindInt, n: n}
}

// Other returns a Value holding v without inspecting its type.
// Prefer [ValueOf] unless v is known to be neither text, bool nor integer.
func Other(v any) Value {
	return Value{kind: KindOther, other: v}
}

// ValueOf classifies v by its dynamic type. Strings become [KindText],
// bools [KindBool] and every integer type [KindInt]. Unsigned integers which
// overflow an int64, floats, maps, slices and nil are [KindOther].
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return uintValue(x)
	default:
		return Other(v)
	}
}

func uintValue(n uint64) Value {
	if n > 1<<63-1 {
		return Other(n)
	}
	return Int(int64(n))
}

// Kind reports which kind of value v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the text held by v and whether v is [KindText].
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Bool returns the bool held by v and whether v is [KindBool].
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Int returns the integer held by v and whether v is [KindInt].
func (v Value) Int() (int64, bool) {
	return v.n, v.kind == KindInt
}

// Any returns the underlying Go value.
func (v Value) Any() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindBool:
		return v.b
	case KindInt:
		return v.n
	default:
		return v.other
	}
}

// String implements the [fmt.Stringer] interface.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.n, 10)
	default:
		return fmt.Sprint(v.other)
	}
}
