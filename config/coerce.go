// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ToString renders any value as text.
func ToString(v Value) (string, error) {
	return v.String(), nil
}

// ToInt converts v into an int. Text is parsed as a base 10 integer after
// trimming whitespace and bools become 1 or 0.
func ToInt(v Value) (int, error) {
	switch v.Kind() {
	case KindText:
		s, _ := v.Text()
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, TypeCoercionError{Value: v, Target: "int", Cause: err}
		}
		return n, nil
	case KindBool:
		if b, _ := v.Bool(); b {
			return 1, nil
		}
		return 0, nil
	case KindInt:
		n, _ := v.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, TypeCoercionError{Value: v, Target: "int", Cause: strconv.ErrRange}
		}
		return int(n), nil
	default:
		return 0, UnsupportedTypeError{Kind: v.Kind(), Target: "int"}
	}
}

var truthy = map[string]struct{}{
	"y":    {},
	"yes":  {},
	"true": {},
	"1":    {},
}

// ToBool converts v into a bool.
//
// Text is true when it is, ignoring case, one of "y", "yes", "true" or "1"
// and false otherwise. Integers are true exactly when equal to 1. Any other
// kind results in an [UnsupportedTypeError].
func ToBool(v Value) (bool, error) {
	switch v.Kind() {
	case KindText:
		s, _ := v.Text()
		_, ok := truthy[strings.ToLower(s)]
		return ok, nil
	case KindBool:
		b, _ := v.Bool()
		return b, nil
	case KindInt:
		n, _ := v.Int()
		return n == 1, nil
	default:
		return false, UnsupportedTypeError{Kind: v.Kind(), Target: "bool"}
	}
}

// ToFloat64 converts v into a float64. Unlike the other coercions it
// accepts floating point values of [KindOther].
func ToFloat64(v Value) (float64, error) {
	switch v.Kind() {
	case KindText:
		s, _ := v.Text()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, TypeCoercionError{Value: v, Target: "float64", Cause: err}
		}
		return f, nil
	case KindInt:
		n, _ := v.Int()
		return float64(n), nil
	case KindOther:
		switch x := v.Any().(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		}
	}
	return 0, UnsupportedTypeError{Kind: v.Kind(), Target: "float64"}
}

// ToDuration converts v into a time.Duration. Text must be understood by
// [time.ParseDuration] and integers are taken as nanoseconds.
func ToDuration(v Value) (time.Duration, error) {
	switch v.Kind() {
	case KindText:
		s, _ := v.Text()
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return 0, TypeCoercionError{Value: v, Target: "time.Duration", Cause: err}
		}
		return d, nil
	case KindInt:
		n, _ := v.Int()
		return time.Duration(n), nil
	default:
		return 0, UnsupportedTypeError{Kind: v.Kind(), Target: "time.Duration"}
	}
}
